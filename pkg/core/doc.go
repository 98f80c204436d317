// Package core provides the reactive values the overlay engine is driven by.
//
// # Observables
//
// An Observable holds one value and notifies its listeners, in registration
// order, when Set stores a different value:
//
//	hidden := core.NewObservable(false)
//	unsubscribe := hidden.Observe(func(v bool) {
//	    fmt.Println("hidden:", v)
//	})
//	hidden.Set(true)  // prints "hidden: true"
//	hidden.Set(true)  // equal value, no notification
//	unsubscribe()
//
// Use NewObservableFunc for values that are not comparable, or to supply a
// custom equality.
//
// # Combining Sources
//
// Merge turns several observables into one Listenable, and Subscriptions
// releases a group of listeners at once:
//
//	var subs core.Subscriptions
//	subs.Add(core.Merge(model.TintKind, model.ShapeKind).AddListener(redraw))
//	defer subs.Cancel()
//
// # Threading
//
// Observables are owned by the UI thread: Set must only be called from it.
// Producers on other goroutines hand their updates to the frame scheduler's
// Dispatch, which runs them on the UI thread before the next paint.
package core
