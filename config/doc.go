// Package config loads service configuration and installs it into a
// deferred global during startup.
//
// It uses Viper to load configuration from config.yml files and the
// environment, and godotenv to pick up .env files.
//
// # Usage
//
//	type Settings struct {
//	    config.ServiceConfig `yaml:",inline" mapstructure:",squash"`
//	    Workers int `yaml:"workers" mapstructure:"workers" validate:"min=1"`
//	}
//
//	var Current = global.Named[Settings]("settings")
//
//	func main() {
//	    if err := config.LoadGlobal(Current, "my-service"); err != nil {
//	        log.Fatal(err)
//	    }
//	    ...
//	}
//
// Environment variables override file values: WORKERS=8 sets workers and
// LOGGING_LEVEL=debug sets logging.level.
package config
