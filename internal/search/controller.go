// Package search owns the query lifecycle: it loads the dataset on demand,
// debounces typing, filters the cached teams and hands results to a Presenter.
package search

import (
	"context"
	"time"

	"github.com/akyairhashvil/brasileirao/internal/config"
	"github.com/akyairhashvil/brasileirao/internal/dataset"
	"github.com/akyairhashvil/brasileirao/internal/models"
	"github.com/akyairhashvil/brasileirao/internal/render"
	"github.com/akyairhashvil/brasileirao/internal/util"
	"go.uber.org/zap"
)

// Options tunes a Controller. Zero values fall back to the defaults in config.
type Options struct {
	Debounce  time.Duration
	Timeout   time.Duration
	Scheduler Scheduler
	Resource  string
	Logger    *zap.Logger
}

// Controller mediates between input events and the filter/presenter pair.
type Controller struct {
	loader    DatasetLoader
	presenter Presenter
	debouncer *Debouncer
	timeout   time.Duration
	resource  string
	logger    *zap.Logger
}

// NewController wires a controller around loader and presenter.
func NewController(loader DatasetLoader, presenter Presenter, opts Options) *Controller {
	if opts.Debounce <= 0 {
		opts.Debounce = config.DebounceDelay
	}
	if opts.Resource == "" {
		opts.Resource = config.DatasetResource
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	return &Controller{
		loader:    loader,
		presenter: presenter,
		debouncer: NewDebouncer(opts.Debounce, opts.Scheduler),
		timeout:   opts.Timeout,
		resource:  opts.Resource,
		logger:    opts.Logger,
	}
}

// Start performs the startup load and renders the full dataset.
func (c *Controller) Start(ctx context.Context) {
	c.ensureLoaded(ctx)
}

// Search handles an explicit trigger (button or Enter). While the cache is
// empty it only loads, which renders the full dataset on success.
func (c *Controller) Search(ctx context.Context, query string) {
	teams, ok := c.loader.Cached()
	if !ok {
		c.ensureLoaded(ctx)
		return
	}
	c.presenter.Present(Filter(teams, query))
}

// Input handles an edit of the query field. Only the last edit within the
// quiet period triggers a search, using that edit's value.
func (c *Controller) Input(ctx context.Context, query string) {
	c.debouncer.Schedule(func() {
		if ctx.Err() != nil {
			return
		}
		c.Search(ctx, query)
	})
}

// Close cancels any pending debounced search.
func (c *Controller) Close() {
	c.debouncer.Cancel()
}

// Cached exposes the loaded dataset, if any.
func (c *Controller) Cached() ([]models.Team, bool) {
	return c.loader.Cached()
}

func (c *Controller) ensureLoaded(ctx context.Context) {
	if teams, ok := c.loader.Cached(); ok {
		c.presenter.Present(teams)
		return
	}

	c.presenter.SetLoading(true)
	defer c.presenter.SetLoading(false)

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	c.logger.Debug("loading dataset", zap.String("resource", c.resource))
	teams, err := c.loader.Load(ctx)
	if err != nil {
		c.reportLoadError(err)
		return
	}
	c.presenter.Present(teams)
}

func (c *Controller) reportLoadError(err error) {
	var fields []zap.Field
	if loadErr, ok := dataset.AsLoadError(err); ok {
		fields = append(fields,
			zap.String("kind", string(loadErr.Kind)),
			zap.String("resource", loadErr.Resource),
			zap.Int("status", loadErr.Status),
		)
	}
	util.LogError(c.logger, "dataset load failed", err, fields...)
	msg := render.LoadErrorView(c.resource).Message
	c.presenter.PresentMessage(msg.Text, msg.Kind)
}
