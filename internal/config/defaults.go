package config

// Section and key names.
const (
	SectionCanvas  = "canvas"
	SectionHistory = "history"
	SectionTools   = "tools"
	SectionExport  = "export"
	SectionLibrary = "library"
)

func applyDefaults(cfg Config) {
	cfg.RegisterDefaults(SectionCanvas, Section{
		"width":           800,
		"height":          600,
		"background":      "#ffffff",
		"snapshot_budget": 0,
	})
	cfg.RegisterDefaults(SectionHistory, Section{
		"capacity": 50,
	})
	cfg.RegisterDefaults(SectionTools, Section{
		"default":      "pencil",
		"color":        "#000000",
		"stroke_width": 2,
		"opacity":      1.0,
	})
	cfg.RegisterDefaults(SectionExport, Section{
		"format":       "png",
		"jpeg_quality": 95,
		"dir":          "",
	})
	cfg.RegisterDefaults(SectionLibrary, Section{
		"path": "",
	})
}
