package overlay

import (
	"fyne.io/fyne/v2"
	"github.com/google/uuid"
)

// PointerListener receives pointer events forwarded by an ActivityNotifier.
type PointerListener interface {
	// PointerIn is called when the pointer enters the notifier's bounds.
	PointerIn()

	// PointerMoved is called for every pointer move or drag over the
	// notifier.
	PointerMoved()

	// PointerOut is called when the pointer leaves the notifier's bounds.
	PointerOut()
}

// ActivityNotifier is implemented by canvas objects that report pointer
// activity to registered listeners. Widgets in this package tree implement
// it on top of the toolkit's hover events.
type ActivityNotifier interface {
	// RegisterPointerListener adds a listener and returns a handle used to
	// unregister it later.
	RegisterPointerListener(listener PointerListener) uuid.UUID

	// UnregisterPointerListener removes the listener registered under the
	// given handle.
	UnregisterPointerListener(id uuid.UUID)
}

// ChildLister is implemented by container widgets that expose their children
// for tree traversal, since the toolkit does not reveal widget internals.
type ChildLister interface {
	ChildObjects() []fyne.CanvasObject
}

// watchHandle records one listener registration so it can be released
type watchHandle struct {
	notifier ActivityNotifier
	id       uuid.UUID
}

// watchTree walks the object tree rooted at object once and registers
// listener with every node that can report pointer activity. Objects added
// to the tree after the walk are not covered; callers that grow the tree
// must release and re-watch.
func watchTree(object fyne.CanvasObject, listener PointerListener) []watchHandle {
	var handles []watchHandle

	if notifier, ok := object.(ActivityNotifier); ok {
		handles = append(handles, watchHandle{
			notifier: notifier,
			id:       notifier.RegisterPointerListener(listener),
		})
	}

	switch parent := object.(type) {
	case *fyne.Container:
		for _, child := range parent.Objects {
			handles = append(handles, watchTree(child, listener)...)
		}
	case ChildLister:
		for _, child := range parent.ChildObjects() {
			handles = append(handles, watchTree(child, listener)...)
		}
	}

	return handles
}
