package render

import (
	"context"
	"errors"
)

// ErrSurfaceBusy is returned by Create while another surface is still live
var ErrSurfaceBusy = errors.New("a rendering surface is already live")

// Handle identifies a created rendering surface. Implementations may carry
// whatever the presentation layer needs; the manager never inspects them.
type Handle interface {
	ID() string
	Configuration() Configuration
}

// Events are invoked asynchronously by a surface after Create returned (or
// during Create). Ready reports the first frame; Lost reports that a created
// surface became invalid.
type Events struct {
	Ready func()
	Lost  func(err error)
}

// Surface is the rendering collaborator. At most one surface may be live;
// Destroy must release everything Create acquired.
type Surface interface {
	Create(ctx context.Context, cfg Configuration, events Events) (Handle, error)
	Destroy(h Handle)
}
