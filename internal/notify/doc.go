// Package notify raises desktop notifications through the macOS notification
// center.
//
// A notification is dispatched by running osascript once with a single
// AppleScript expression:
//
//	display notification "<message>" with title "<title>" sound name "<sound>"
//
// The message and title are embedded verbatim. A double quote or backslash in
// either one ends the AppleScript string early, so such text can produce a
// malformed or altered script. This is a known limitation and the text is not
// escaped.
//
// # Usage
//
//	n := notify.New("osascript", logger)
//	if err := n.Notify("", "build finished", sound.Glass); err != nil {
//		// osascript could not be run
//	}
//
// An empty title is replaced with DefaultTitle.
package notify
