package visual

import (
	"barlens/internal/host"
	"barlens/internal/scene"
)

// Services are the host collaborators the visual depends on. Palette and
// IDs fall back to the defaults in the host package when nil; Selections
// and Tooltips may stay nil for hosts without those surfaces.
type Services struct {
	Palette    host.Palette
	IDs        host.SelectionIDFactory
	Selections host.SelectionManager
	Tooltips   host.TooltipService
}

// BarVisual is the categorical bar-chart visual. It owns its scene graph
// and holds nothing across updates except the last computed view model and
// settings.
type BarVisual struct {
	scene    *scene.Scene
	renderer *Renderer
	services Services

	settings  Settings
	viewModel ViewModel
	viewport  host.Viewport
}

// New creates a visual wired to the given host services.
func New(services Services) *BarVisual {
	if services.Palette == nil {
		services.Palette = host.NewHashPalette()
	}
	if services.IDs == nil {
		services.IDs = host.IdentityFactory{}
	}
	sc := scene.New()
	return &BarVisual{
		scene:    sc,
		renderer: NewRenderer(sc, services.Selections, services.Tooltips),
		services: services,
		settings: DefaultSettings(),
	}
}

// Update is the host's entry point on every data, settings or viewport
// change. It is a full recompute: settings are reparsed, the view model is
// rebuilt, and the scene is re-rendered. Identical inputs produce an
// identical scene.
func (v *BarVisual) Update(opts host.UpdateOptions) {
	v.settings = ParseSettings(opts.DataView)
	v.viewModel = BuildViewModel(opts.DataView, v.services.Palette, v.services.IDs)
	v.viewport = opts.Viewport
	v.renderer.Render(v.viewModel, v.settings, opts.Viewport)
}

// Scene exposes the retained scene graph for the host to rasterize and
// hit-test.
func (v *BarVisual) Scene() *scene.Scene { return v.scene }

// ViewModel returns the last computed view model.
func (v *BarVisual) ViewModel() ViewModel { return v.viewModel }

// Settings returns the last parsed settings.
func (v *BarVisual) Settings() Settings { return v.settings }

// EnumerateObjectInstances feeds the host's property pane: the xAxis group
// exposes the show flag, the dataColor group exposes one color entry per
// category bound to that category's selection identity.
func (v *BarVisual) EnumerateObjectInstances(opts host.EnumerateOptions) []host.ObjectInstance {
	switch opts.ObjectName {
	case objectXAxis:
		return []host.ObjectInstance{{
			ObjectName: objectXAxis,
			Properties: map[string]any{propShow: v.settings.XAxis.Show},
		}}
	case objectDataColor:
		instances := make([]host.ObjectInstance, 0, len(v.viewModel.DataPoints))
		for _, dp := range v.viewModel.DataPoints {
			instances = append(instances, host.ObjectInstance{
				ObjectName:  objectDataColor,
				DisplayName: dp.Category,
				Properties:  map[string]any{propFill: dp.Color},
				Selector:    dp.SelectionID,
			})
		}
		return instances
	default:
		return nil
	}
}
