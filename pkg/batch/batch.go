package batch

import (
	"context"

	"github.com/himotoki/himotoki"
)

// TokenizeAll tokenizes every text concurrently over a bounded pool and
// returns results positionally. errs[i] is non-nil when texts[i] failed;
// a failure of one text never affects the others.
func TokenizeAll(ctx context.Context, texts []string, workers int) ([][]himotoki.Token, []error) {
	results := make([][]himotoki.Token, len(texts))
	errs := make([]error, len(texts))

	p := NewPool(workers, len(texts))
	p.Start(ctx)
	for i, text := range texts {
		i, text := i, text
		_ = p.Submit(func(ctx context.Context) error {
			toks, err := himotoki.Tokenize(text)
			results[i] = toks
			errs[i] = err
			return err
		})
	}
	p.Close()
	return results, errs
}
