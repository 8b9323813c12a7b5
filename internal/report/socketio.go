package report

import (
	"context"
	"crypto/tls"
	"fmt"
	"net/url"
	"time"

	"github.com/zishang520/engine.io-client-go/transports"
	"github.com/zishang520/engine.io/v2/types"
	"github.com/zishang520/socket.io-client-go/socket"

	"github.com/vk/ppcheck/internal/config"
	"github.com/vk/ppcheck/internal/ctxlog"
)

const defaultTimeout = 10 * time.Second

// SocketIO emits one event per root to a socket.io namespace over a
// WebSocket transport.
type SocketIO struct {
	cfg *config.SocketIOReporter
}

// NewSocketIO creates a publisher for cfg.
func NewSocketIO(cfg *config.SocketIOReporter) *SocketIO {
	return &SocketIO{cfg: cfg}
}

// Publish connects, emits the reports and disconnects. It fails when no
// connection is established within the configured timeout.
func (p *SocketIO) Publish(ctx context.Context, reports []*FileReport) error {
	logger := ctxlog.FromContext(ctx).With("reporter", "socketio", "url", p.cfg.URL)
	logger.Debug("Publisher started.")
	defer logger.Debug("Publisher finished.")

	parsedURL, err := url.Parse(p.cfg.URL)
	if err != nil {
		return fmt.Errorf("failed to parse URL: %w", err)
	}
	if parsedURL.Scheme == "" || parsedURL.Host == "" {
		return fmt.Errorf("URL %q must be absolute", p.cfg.URL)
	}

	opts := socket.DefaultOptions()
	opts.SetPath(parsedURL.Path)
	if p.cfg.InsecureSkipVerify {
		logger.Warn("Skipping TLS certificate verification")
		opts.SetTLSClientConfig(&tls.Config{InsecureSkipVerify: true})
	}
	opts.SetTransports(types.NewSet(transports.WebSocket))

	baseURL := fmt.Sprintf("%s://%s", parsedURL.Scheme, parsedURL.Host)
	manager := socket.NewManager(baseURL, opts)
	io := manager.Socket(p.cfg.Namespace, opts)
	defer func() {
		logger.Debug("Disconnecting socket client")
		io.Disconnect()
	}()

	connectChan := make(chan error, 1)
	io.Once(types.EventName("connect"), func(...any) {
		logger.Debug("Successfully connected", "sid", io.Id())
		select {
		case connectChan <- nil:
		default:
		}
	})
	io.Once(types.EventName("connect_error"), func(errs ...any) {
		err := fmt.Errorf("connect error")
		if len(errs) > 0 {
			if e, ok := errs[0].(error); ok {
				err = e
			}
		}
		select {
		case connectChan <- err:
		default:
		}
	})

	timeout := p.cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	connCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	io.Connect()
	select {
	case err := <-connectChan:
		if err != nil {
			return fmt.Errorf("socket.io connection failed: %w", err)
		}
	case <-connCtx.Done():
		return fmt.Errorf("timed out after %s waiting for socket.io connection", timeout)
	}

	for _, r := range reports {
		logger.Debug("Emitting report", "event", p.cfg.Event, "root", r.Root)
		io.Emit(p.cfg.Event, newRootJSON(r))
	}
	logger.Info("Published reports.", "event", p.cfg.Event, "count", len(reports))
	return nil
}
