/*
Package builtin provides the basic widget types of the page builder:
heading, text, button, image, video, spacer and divider.

Use it like this:

    reg := widget.NewRegistry()
    builtin.Register(reg)

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package builtin

import (
	"fmt"

	"github.com/npillmayer/pagebuilder/widget"
)

// Categories of the built-in widgets.
const (
	CategoryBasic = "basic"
	CategoryMedia = "media"
)

// Widgets returns the definitions of all built-in widget types.
func Widgets() []widget.Widget {
	return []widget.Widget{
		Heading(), Text(), Button(), Image(), Video(), Spacer(), Divider(),
	}
}

// Register registers all built-in widget types with reg.
func Register(reg *widget.Registry) error {
	for _, w := range Widgets() {
		if err := reg.Register(w); err != nil {
			return fmt.Errorf("built-in widgets: %w", err)
		}
	}
	return nil
}

// Field helpers for the schemas below.

func field(typ, name, label string, dflt any) widget.Field {
	return widget.Field{Type: typ, Name: name, Label: label, Default: dflt}
}

func responsive(f widget.Field) widget.Field {
	f.Responsive = true
	return f
}

func when(f widget.Field, sibling string, values ...any) widget.Field {
	if len(values) == 1 {
		f.Condition = &widget.Condition{Field: sibling, Equals: values[0]}
	} else {
		f.Condition = &widget.Condition{Field: sibling, In: values}
	}
	return f
}

// commonStyle are style fields every widget supports.
func commonStyle() []widget.Field {
	return []widget.Field{
		responsive(field("dimensions", "margin", "Margin", nil)),
		responsive(field("dimensions", "padding", "Padding", nil)),
		field("background", "background", "Background", nil),
		field("border", "border", "Border", nil),
		field("shadow", "boxShadow", "Box Shadow", nil),
	}
}

// commonAdvanced are advanced fields every widget supports.
func commonAdvanced() []widget.Field {
	return []widget.Field{
		field("text", "cssId", "CSS ID", nil),
		field("text", "cssClass", "CSS Classes", nil),
		field("code", "customCss", "Custom CSS", nil),
		field("toggle", "hideDesktop", "Hide on Desktop", false),
		field("toggle", "hideTablet", "Hide on Tablet", false),
		field("toggle", "hideMobile", "Hide on Mobile", false),
	}
}
