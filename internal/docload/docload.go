// Package docload reads pre-rasterized document pages from disk. A source is
// either a single image file or a directory of page images ordered by
// filename.
package docload

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/lenderdesk/docsift/internal/extract"
)

var mediaTypes = map[string]string{
	".png":  "image/png",
	".jpg":  "image/jpeg",
	".jpeg": "image/jpeg",
}

// LoadPages reads page images from a file or directory path. Directory
// entries are sorted by name so page order follows the usual page-001,
// page-002 naming. Files with unrecognized extensions are skipped.
func LoadPages(source string) ([]extract.PageImage, error) {
	info, err := os.Stat(source)
	if err != nil {
		return nil, eris.Wrapf(err, "docload: stat %s", source)
	}

	if !info.IsDir() {
		page, err := loadPage(source)
		if err != nil {
			return nil, err
		}
		return []extract.PageImage{page}, nil
	}

	entries, err := os.ReadDir(source)
	if err != nil {
		return nil, eris.Wrapf(err, "docload: read dir %s", source)
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if _, ok := mediaTypes[strings.ToLower(filepath.Ext(e.Name()))]; ok {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	if len(names) == 0 {
		return nil, eris.Errorf("docload: no page images in %s", source)
	}

	pages := make([]extract.PageImage, 0, len(names))
	for _, name := range names {
		page, err := loadPage(filepath.Join(source, name))
		if err != nil {
			return nil, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}

func loadPage(path string) (extract.PageImage, error) {
	mediaType, ok := mediaTypes[strings.ToLower(filepath.Ext(path))]
	if !ok {
		return extract.PageImage{}, eris.Errorf("docload: unsupported page format %s", filepath.Ext(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return extract.PageImage{}, eris.Wrapf(err, "docload: read %s", path)
	}
	return extract.PageImage{Data: data, MediaType: mediaType}, nil
}
