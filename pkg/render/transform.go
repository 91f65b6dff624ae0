package render

import (
	"fmt"
	"strings"
)

// DisplayOverrides describes how the on-screen card is reshaped into its
// print form right before capture. On screen the card scrolls inside a fixed
// viewport and carries animated chrome; none of that belongs in the saved
// image, so the root is unclamped to its natural height and the marked
// elements are hidden.
type DisplayOverrides struct {
	RootSelector     string // RootSelector locates the card container.
	HideSelector     string // HideSelector matches elements excluded from capture.
	GradientSelector string // GradientSelector matches gradient text to flatten.
	GradientInk      string // GradientInk is the solid color replacing gradients.
	BottomPaddingPx  int    // BottomPaddingPx restores breathing room lost with the scrollbar.
	StripRootClasses []string
}

// DefaultOverrides returns the capture overrides matching the card markup in
// this package.
func DefaultOverrides() DisplayOverrides {
	return DisplayOverrides{
		RootSelector:     "[data-card-root]",
		HideSelector:     "[data-hide-download]",
		GradientSelector: ".text-transparent, .bg-clip-text",
		GradientInk:      "#d97706",
		BottomPaddingPx:  60,
		StripRootClasses: []string{"overflow-y-auto", "custom-scrollbar"},
	}
}

// Script compiles the overrides into a JavaScript snippet that a browser
// evaluates on the loaded card document. It unclamps the root, strips the
// scroll classes, hides the marked elements, and flattens gradient text.
func (o DisplayOverrides) Script() string {
	var b strings.Builder
	b.WriteString("(function() {\n")
	fmt.Fprintf(&b, "  const root = document.querySelector(%q);\n", o.RootSelector)
	b.WriteString("  if (root) {\n")
	b.WriteString("    root.style.height = 'auto';\n")
	b.WriteString("    root.style.maxHeight = 'none';\n")
	b.WriteString("    root.style.overflow = 'visible';\n")
	b.WriteString("    root.style.transform = 'none';\n")
	fmt.Fprintf(&b, "    root.style.paddingBottom = '%dpx';\n", o.BottomPaddingPx)
	for _, class := range o.StripRootClasses {
		fmt.Fprintf(&b, "    root.classList.remove(%q);\n", class)
	}
	b.WriteString("  }\n")
	fmt.Fprintf(&b, "  document.querySelectorAll(%q).forEach((el) => {\n", o.HideSelector)
	b.WriteString("    el.style.display = 'none';\n")
	b.WriteString("  });\n")
	fmt.Fprintf(&b, "  document.querySelectorAll(%q).forEach((el) => {\n", o.GradientSelector)
	fmt.Fprintf(&b, "    el.style.color = %q;\n", o.GradientInk)
	b.WriteString("    el.style.backgroundImage = 'none';\n")
	b.WriteString("    el.style.webkitBackgroundClip = 'initial';\n")
	b.WriteString("    el.style.backgroundClip = 'initial';\n")
	b.WriteString("    el.style.animation = 'none';\n")
	b.WriteString("  });\n")
	b.WriteString("})()")

	return b.String()
}
