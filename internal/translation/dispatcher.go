package translation

import "context"

// DefaultWorkers bounds concurrent provider calls when no size is configured,
// keeping within the provider's rate expectations.
const DefaultWorkers = 5

// Dispatcher funnels translation calls through a fixed number of worker
// slots. Provider calls block on the network; the slot bound keeps many
// concurrent callers from stacking unbounded in-flight requests.
type Dispatcher struct {
	provider Provider
	slots    chan struct{}
}

func NewDispatcher(provider Provider, workers int) *Dispatcher {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	return &Dispatcher{
		provider: provider,
		slots:    make(chan struct{}, workers),
	}
}

// Translate acquires a worker slot, performs the provider call and returns
// the translated text. Waiting for a slot respects ctx. Provider failures are
// wrapped in *ProviderError and never retried.
func (d *Dispatcher) Translate(ctx context.Context, text, fromLang, toLang string) (string, error) {
	select {
	case d.slots <- struct{}{}:
	case <-ctx.Done():
		return "", ctx.Err()
	}
	defer func() { <-d.slots }()

	resp, err := d.provider.Translate(ctx, TranslateRequest{
		Text:       text,
		SourceLang: fromLang,
		TargetLang: toLang,
	})
	if err != nil {
		return "", &ProviderError{Provider: d.provider.Name(), Cause: err}
	}
	return resp.Text, nil
}
