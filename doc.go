// Package globalhotkey registers keyboard shortcuts that fire even when
// the process has no focused window, and delivers press/release events
// for them.
//
// Supported platforms: Linux and the BSDs (X11 only) and Windows. On any
// other platform the manager accepts registrations but never delivers
// events.
//
//	manager, err := globalhotkey.NewManager()
//	if err != nil {
//		// ...
//	}
//	defer manager.Close()
//
//	hk, _ := hotkey.Parse("ctrl+shift+KeyD")
//	if err := manager.Register(hk); err != nil {
//		// ...
//	}
//
//	rx := manager.Receiver()
//	for {
//		if ev, ok := rx.TryRecv(); ok {
//			fmt.Println(ev.ID, ev.State)
//		}
//		time.Sleep(50 * time.Millisecond)
//	}
//
// Instead of polling, a single handler can be installed on the event bus
// with SetHandler; it is then invoked synchronously for every event and
// nothing is enqueued to the channel.
package globalhotkey
