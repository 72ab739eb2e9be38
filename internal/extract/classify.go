package extract

import (
	"context"

	"github.com/rotisserie/eris"

	"github.com/lenderdesk/docsift/internal/model"
)

// ClassifyDocument identifies the document type from the first page. Mortgage
// packs put the identifying header on page one, so later pages are never
// consulted.
func ClassifyDocument(ctx context.Context, classifier Classifier, pages []PageImage) (*model.Classification, error) {
	if classifier == nil {
		return nil, eris.New("extract: classification requires a classifier")
	}
	if len(pages) == 0 {
		return nil, eris.New("extract: cannot classify a document with no pages")
	}
	c, err := classifier.Classify(ctx, pages[0])
	if err != nil {
		return nil, eris.Wrap(err, "extract: classify document")
	}
	return c, nil
}
