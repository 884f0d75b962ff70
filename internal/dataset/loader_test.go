package dataset

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/google/go-cmp/cmp"
)

const sampleJSON = `[{"nome":"Palmeiras","descricao":"Verdão","ano":1914},{"nome":"Corinthians"}]`

func samplePayload() Payload {
	return Payload{Resource: "dados.json", Format: FormatJSON, Body: []byte(sampleJSON)}
}

func TestLoaderFetchesOnce(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any()).Return(samplePayload(), nil).Times(1)

	loader := NewLoader(fetcher, nil)
	if _, ok := loader.Cached(); ok {
		t.Fatalf("expected empty cache before load")
	}
	first, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("first Load failed: %v", err)
	}
	second, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("second Load failed: %v", err)
	}
	if diff := cmp.Diff(first, second); diff != "" {
		t.Fatalf("cached dataset changed (-first +second):\n%s", diff)
	}
	if len(first) != 2 || first[0].Name != "Palmeiras" || first[0].FoundedYear != "1914" {
		t.Fatalf("unexpected dataset %+v", first)
	}
	if cached, ok := loader.Cached(); !ok || len(cached) != 2 {
		t.Fatalf("expected populated cache, got %v %v", cached, ok)
	}
}

func TestLoaderFailureLeavesCacheEmptyAndRetries(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	gomock.InOrder(
		fetcher.EXPECT().Fetch(gomock.Any()).Return(Payload{}, statusErr("dados.json", 404, "")),
		fetcher.EXPECT().Fetch(gomock.Any()).Return(samplePayload(), nil),
	)

	loader := NewLoader(fetcher, nil)
	_, err := loader.Load(context.Background())
	loadErr, ok := AsLoadError(err)
	if !ok {
		t.Fatalf("expected LoadError, got %v", err)
	}
	if loadErr.Kind != KindHTTPStatus || loadErr.Status != 404 {
		t.Fatalf("unexpected LoadError %+v", loadErr)
	}
	if _, ok := loader.Cached(); ok {
		t.Fatalf("failed load must not populate the cache")
	}
	teams, err := loader.Load(context.Background())
	if err != nil {
		t.Fatalf("retry Load failed: %v", err)
	}
	if len(teams) != 2 {
		t.Fatalf("expected 2 teams after retry, got %d", len(teams))
	}
}

func TestLoaderParseFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any()).Return(Payload{Resource: "dados.json", Body: []byte(`{"nome":"x"}`)}, nil)

	_, err := NewLoader(fetcher, nil).Load(context.Background())
	loadErr, ok := AsLoadError(err)
	if !ok || loadErr.Kind != KindParse {
		t.Fatalf("expected parse LoadError, got %v", err)
	}
	if !errors.Is(err, ErrInvalidFormat) {
		t.Fatalf("expected ErrInvalidFormat in chain, got %v", err)
	}
}

func TestLoaderEmptyDatasetIsNotCached(t *testing.T) {
	ctrl := gomock.NewController(t)
	fetcher := NewMockFetcher(ctrl)
	fetcher.EXPECT().Fetch(gomock.Any()).Return(Payload{Resource: "dados.json", Body: []byte(`[]`)}, nil).Times(2)

	loader := NewLoader(fetcher, nil)
	for i := 0; i < 2; i++ {
		teams, err := loader.Load(context.Background())
		if err != nil {
			t.Fatalf("Load failed: %v", err)
		}
		if len(teams) != 0 {
			t.Fatalf("expected empty dataset, got %d", len(teams))
		}
	}
}

type blockingFetcher struct {
	mu      sync.Mutex
	calls   int
	release chan struct{}
	started chan struct{}
}

func (f *blockingFetcher) Fetch(ctx context.Context) (Payload, error) {
	f.mu.Lock()
	f.calls++
	first := f.calls == 1
	f.mu.Unlock()
	if first {
		close(f.started)
	}
	<-f.release
	return samplePayload(), nil
}

func TestLoaderConcurrentLoadsShareFetch(t *testing.T) {
	fetcher := &blockingFetcher{release: make(chan struct{}), started: make(chan struct{})}
	loader := NewLoader(fetcher, nil)

	const callers = 5
	var wg sync.WaitGroup
	results := make([]int, callers)
	errs := make([]error, callers)
	wg.Add(1)
	go func() {
		defer wg.Done()
		teams, err := loader.Load(context.Background())
		results[0], errs[0] = len(teams), err
	}()
	<-fetcher.started
	for i := 1; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			teams, err := loader.Load(context.Background())
			results[i], errs[i] = len(teams), err
		}(i)
	}
	close(fetcher.release)
	wg.Wait()

	for i := 0; i < callers; i++ {
		if errs[i] != nil {
			t.Fatalf("caller %d failed: %v", i, errs[i])
		}
		if results[i] != 2 {
			t.Fatalf("caller %d got %d teams, want 2", i, results[i])
		}
	}
	if fetcher.calls != 1 {
		t.Fatalf("expected a single fetch, got %d", fetcher.calls)
	}
}
