// Copyright (c) 2023, The GoKi Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package events

import "fmt"

// Types determines the type of input event, and also the
// level at which one can select which events to listen to.
// The names follow the standard
// [JavaScript Event](https://developer.mozilla.org/en-US/docs/Web/Events)
// names, which are available through [Types.Name] and [TypeByName].
type Types int32

const (
	// zero value is an unknown type
	UnknownType Types = iota

	// MouseDown happens when a mouse button is pressed down. See Button for which.
	MouseDown

	// MouseUp happens when a mouse button is released. See Button for which.
	MouseUp

	// MouseMove is sent when the mouse is moving with no button down.
	MouseMove

	// MouseDrag is sent when the mouse is moving with a button down.
	// Start holds where the button was first pressed.
	MouseDrag

	// Click represents a MouseDown followed by MouseUp in sequence on the
	// same element, with the same button.
	Click

	// DoubleClick represents two Click events in a row in rapid succession.
	DoubleClick

	// Scroll is for scroll wheel motion, with the amount in Delta.
	Scroll

	// TouchStart is when one or more fingers touch the element.
	TouchStart

	// TouchEnd is when one or more fingers are lifted.
	TouchEnd

	// TouchMove is when one or more touching fingers move.
	TouchMove

	// ContextMenu is a request for a context menu, typically a right click.
	ContextMenu

	// Custom is a [Generic] event that has no other type.
	Custom

	typesN
)

var typeNames = [typesN]string{
	"unknown", "mousedown", "mouseup", "mousemove", "mousedrag", "click", "dblclick",
	"wheel", "touchstart", "touchend", "touchmove", "contextmenu", "custom",
}

var typeStrings = [typesN]string{
	"UnknownType", "MouseDown", "MouseUp", "MouseMove", "MouseDrag", "Click", "DoubleClick",
	"Scroll", "TouchStart", "TouchEnd", "TouchMove", "ContextMenu", "Custom",
}

func (tp Types) String() string {
	if tp < 0 || tp >= typesN {
		return fmt.Sprintf("Types(%d)", int32(tp))
	}
	return typeStrings[tp]
}

// Name returns the DOM event name of the type, such as "dblclick".
func (tp Types) Name() string {
	if tp < 0 || tp >= typesN {
		return ""
	}
	return typeNames[tp]
}

// TypeByName returns the type with the given DOM event name.
// "mousewheel" is accepted as an alias of "wheel".
func TypeByName(name string) (Types, bool) {
	if name == "mousewheel" {
		return Scroll, true
	}
	for i, nm := range typeNames {
		if i > 0 && nm == name {
			return Types(i), true
		}
	}
	return UnknownType, false
}

// Kinds is the discriminant of the event payload union.
type Kinds int32

const (
	// GenericKind events carry no position: [*Generic].
	GenericKind Kinds = iota

	// PointerKind events have a single position: [*Pointer].
	PointerKind

	// TouchKind events have one position per contact: [*Touch].
	TouchKind
)

func (k Kinds) String() string {
	switch k {
	case GenericKind:
		return "Generic"
	case PointerKind:
		return "Pointer"
	case TouchKind:
		return "Touch"
	}
	return fmt.Sprintf("Kinds(%d)", int32(k))
}

// Buttons is a mouse button.
type Buttons int32

const (
	NoButton Buttons = iota
	Left
	Middle
	Right
)

func (bt Buttons) String() string {
	switch bt {
	case NoButton:
		return "NoButton"
	case Left:
		return "Left"
	case Middle:
		return "Middle"
	case Right:
		return "Right"
	}
	return fmt.Sprintf("Buttons(%d)", int32(bt))
}
