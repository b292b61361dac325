// Package global provides Var, a process-wide variable whose storage exists
// from program start but whose value is supplied later, exactly once, by
// startup code. After that every goroutine reaches the value through a
// mutual-exclusion lock.
//
// # Declaration
//
// The zero value of Var is ready to use and is Uninitialized, so a Var can
// be declared at package level without any initialization code:
//
//	var Settings global.Var[Config]
//
// Named attaches a name used in logs and fault messages:
//
//	var Settings = global.Named[Config]("settings")
//
// # Initialization
//
// Startup code installs the value with Set. Exactly one Set succeeds; every
// later call returns an error matching ErrAlreadyInitialized and leaves the
// installed value untouched. Set must happen before any goroutine that
// calls Lock or TryLock is started. The package does not enforce that
// ordering.
//
//	if err := Settings.Set(loadConfig()); err != nil {
//	    log.Fatal(err)
//	}
//
// # Access
//
//	g, err := Settings.Lock()
//	if err != nil {
//	    // errors.Is(err, global.ErrPoisoned): g is valid and held
//	}
//	defer g.Unlock()
//	g.Value().Timeout = 5 * time.Second
//
// Calling Lock, TryLock or Mutex before Set panics with an
// *UninitializedError. That is a programming error and is never reported as
// an ordinary error value.
//
// # Poisoning
//
// When a goroutine panics while holding the lock and released it through a
// deferred Guard.Unlock (or inside Do), the lock is marked poisoned. Later
// Lock and TryLock calls still return a held guard, together with
// ErrPoisoned, and the caller decides whether to carry on with the value or
// to propagate the condition. ClearPoison resets the mark.
package global
