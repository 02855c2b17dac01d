// Command ddrender replays an editing script without a window and writes
// the result as an image, a .ddd archive or a library entry. The drawing
// starts blank, or from a library project or archive.
//
//	ddrender -script strokes.json -o out.png
//	ddrender -script strokes.json -o out.pdf -archive out.ddd
//	ddrender -load 7f1c... -script more.json -library
//	ddrender -load 7f1c... -script "" -o copy.tiff
//	ddrender -delete 7f1c...
package main

import (
	"errors"
	"flag"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/Drawing-master/Drawing-Master/internal/config"
	"github.com/Drawing-master/Drawing-Master/internal/editor"
	"github.com/Drawing-master/Drawing-Master/internal/export"
	"github.com/Drawing-master/Drawing-Master/internal/logging"
	"github.com/Drawing-master/Drawing-Master/internal/project"
	"github.com/Drawing-master/Drawing-Master/internal/script"
	"github.com/Drawing-master/Drawing-Master/internal/surface"
)

func main() {
	var (
		scriptPath  = flag.String("script", "-", "script file, - for stdin, empty for none")
		output      = flag.String("o", "", "output image (format from extension)")
		format      = flag.String("format", "", "output format, overrides the extension")
		archive     = flag.String("archive", "", "also write a .ddd project archive")
		library     = flag.Bool("library", false, "also save to the project library")
		name        = flag.String("name", "", "project name")
		configPath  = flag.String("config", "", "config file (default: user config dir)")
		width       = flag.Int("width", 0, "canvas width, overrides script and config")
		height      = flag.Int("height", 0, "canvas height, overrides script and config")
		verbose     = flag.Bool("v", false, "debug logging")
		listLibrary = flag.Bool("list", false, "list library projects and exit")
		loadID      = flag.String("load", "", "start from the library project with this id")
		from        = flag.String("from", "", "start from a .ddd project archive")
		deleteID    = flag.String("delete", "", "delete the library project with this id and exit")
	)
	flag.Parse()

	logging.SetLogger(logging.New(os.Stderr, *verbose))

	cfg, err := loadConfig(*configPath)
	if err != nil {
		logging.Logger().Warn("config", "err", err)
	}
	settings := cfg.Settings()

	if *listLibrary {
		if err := list(settings); err != nil {
			fatal(err)
		}
		return
	}
	if *deleteID != "" {
		if err := remove(settings, *deleteID); err != nil {
			fatal(err)
		}
		return
	}
	if *loadID != "" && *from != "" {
		fmt.Fprintln(os.Stderr, "ddrender: -load and -from are exclusive")
		os.Exit(2)
	}

	if *output == "" && *archive == "" && !*library {
		fmt.Fprintln(os.Stderr, "ddrender: nothing to write; use -o, -archive or -library")
		os.Exit(2)
	}

	var sc *script.Script
	if *scriptPath != "" {
		if sc, err = readScript(*scriptPath); err != nil {
			fatal(err)
		}
	}

	w, h := settings.CanvasWidth, settings.CanvasHeight
	if sc != nil && sc.Width > 0 && sc.Height > 0 {
		w, h = sc.Width, sc.Height
	}
	if *width > 0 && *height > 0 {
		w, h = *width, *height
	}

	c, err := surface.New(w, h, settings.SurfaceOptions()...)
	if err != nil {
		fatal(err)
	}
	defer c.Close()

	ed, err := editor.New(c, settings.EditorOptions()...)
	if err != nil {
		fatal(err)
	}

	meta, err := start(settings, *loadID, *from, c, ed)
	if err != nil {
		fatal(err)
	}
	if *name != "" {
		meta.Name = *name
	} else if sc != nil && sc.Name != "" && *loadID == "" && *from == "" {
		meta.Name = sc.Name
	}

	if sc != nil {
		if err := sc.Run(ed); err != nil {
			fatal(err)
		}
		if _, n := ed.HistoryPosition(); n > 1 {
			meta.Touch()
		}
	}

	img := ed.Snapshot().Image()
	w, h = img.Bounds().Dx(), img.Bounds().Dy()

	if *output != "" {
		f, err := outputFormat(*output, *format)
		if err != nil {
			fatal(err)
		}
		if err := writeImage(*output, img, f, settings.ExportOptions()...); err != nil {
			fatal(err)
		}
		logging.Logger().Info("exported", "path", *output, "format", f.String(), "width", w, "height", h)
	}
	if *archive != "" {
		if err := project.SaveArchive(*archive, &meta, img); err != nil {
			fatal(err)
		}
		logging.Logger().Info("archived", "path", *archive, "id", meta.ID.String())
	}
	if *library {
		lib, err := openLibrary(settings)
		if err != nil {
			fatal(err)
		}
		defer lib.Close()
		if err := lib.Save(&meta, img); err != nil {
			fatal(err)
		}
	}
}

// start loads the starting drawing into c and returns its metadata. With
// neither id nor archive set the drawing stays blank.
func start(s config.Settings, id, archive string, c *surface.Canvas, ed *editor.Editor) (project.Metadata, error) {
	switch {
	case id != "":
		pid, err := project.ParseID(id)
		if err != nil {
			return project.Metadata{}, err
		}
		lib, err := openLibrary(s)
		if err != nil {
			return project.Metadata{}, err
		}
		defer lib.Close()
		return lib.Open(pid, c, ed)
	case archive != "":
		meta, img, err := project.LoadArchive(archive)
		if err != nil {
			return project.Metadata{}, err
		}
		return meta, project.Apply(img, c, ed)
	}
	return project.New(""), nil
}

func openLibrary(s config.Settings) (*project.Library, error) {
	path, err := s.ResolveLibraryPath()
	if err != nil {
		return nil, err
	}
	return project.OpenLibrary(path)
}

func remove(s config.Settings, id string) error {
	pid, err := project.ParseID(id)
	if err != nil {
		return err
	}
	lib, err := openLibrary(s)
	if err != nil {
		return err
	}
	defer lib.Close()
	return lib.Delete(pid)
}

func loadConfig(path string) (config.Config, error) {
	if path == "" {
		return config.LoadDefault()
	}
	return config.Load(path)
}

func readScript(path string) (*script.Script, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return script.Parse(r)
}

func outputFormat(path, override string) (export.Format, error) {
	if override != "" {
		return export.ParseFormat(override)
	}
	return export.FormatFromPath(path)
}

func writeImage(path string, img image.Image, f export.Format, opts ...export.Option) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := export.Encode(file, img, f, opts...); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}

func list(s config.Settings) error {
	lib, err := openLibrary(s)
	if err != nil {
		return err
	}
	defer lib.Close()
	projects, err := lib.List()
	if err != nil {
		return err
	}
	for _, m := range projects {
		fmt.Printf("%s  %-24s  %s\n", m.ID, m.Name, m.ModifiedAt.Format("2006-01-02 15:04"))
	}
	return nil
}

func fatal(err error) {
	var pathErr *os.PathError
	if errors.As(err, &pathErr) {
		fmt.Fprintf(os.Stderr, "ddrender: %s: %v\n", filepath.Base(pathErr.Path), pathErr.Err)
	} else {
		fmt.Fprintf(os.Stderr, "ddrender: %v\n", err)
	}
	os.Exit(1)
}
