// Package trellis is a retained-mode UI widget toolkit for [Ebitengine].
//
// Elements (labels, buttons, groups) form a tree. Each element draws through
// a [Layer] of a small scene graph and is styled through typed [Style]
// properties, resolved from the element's own [Styles], the [Stylesheet] of
// its ancestors, and inherited parent values.
//
// # Quick start
//
//	iface := trellis.NewInterface()
//	sheet := trellis.NewStylesheetBuilder().
//		Add("Button", trellis.BackgroundStyle.Is(
//			trellis.Beveled(0xFF336699, 0xFF6699CC, 0xFF113355).Inset(6))).
//		Create()
//	root := iface.CreateRoot(nil, sheet)
//	ok := trellis.NewButton("OK")
//	ok.SetConstraint(trellis.At(20, 20))
//	ok.OnClick(func(*trellis.Button) { fmt.Println("clicked") })
//	root.Add(ok)
//	root.SetSizeAt(0, 0, 640, 480)
//	trellis.Run(iface, trellis.RunConfig{Title: "Demo", Width: 640, Height: 480})
//
// # Backgrounds
//
// A [Background] is a size-independent template: a fill or border plus the
// inset space it reserves. When an element is laid out it instantiates its
// background at its size and adds the resulting [Instance] behind its content
// at [BackgroundDepth]. A resize or a mode change destroys the old instance
// before the new one is attached.
//
// # Behaviors
//
// A [Widget] may carry one [Behavior], created by the [BehaviorFactory] it is
// constructed with. The behavior listens to the widget layer's pointer stream
// until the widget is destroyed.
//
// # Debug mode
//
// [Scene.SetDebugMode] turns misuse of destroyed layers and background
// instances into panics and logs per-frame stats through the logger set with
// [SetLogger].
//
// [Ebitengine]: https://ebitengine.org
package trellis
