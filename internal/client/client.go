package client

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/spf13/afero"

	"omd-cli/internal/logging"
)

// Camera CGI endpoints. The image listing only ever covers MediaDir.
const (
	MediaDir     = "/DCIM/100OLYMP"
	infoPath     = "/get_caminfo.cgi"
	listPath     = "/get_imglist.cgi?DIR=" + MediaDir
	powerOffPath = "/exec_pwoff.cgi"
)

type OlympusClient struct {
	HTTP   *resty.Client
	Config ClientConfig

	fs  afero.Fs
	log *slog.Logger
}

type ClientConfig struct {
	IP      string        // Host or host:port; an explicit http:// scheme is accepted
	Timeout time.Duration // Zero leaves the transport defaults in place
}

// New returns a client writing downloads to the OS filesystem.
func New(cfg ClientConfig, log *slog.Logger) *OlympusClient {
	return NewWithFS(afero.NewOsFs(), cfg, log)
}

func NewWithFS(fs afero.Fs, cfg ClientConfig, log *slog.Logger) *OlympusClient {
	if log == nil {
		log = logging.Discard()
	}
	log = log.With(slog.String("camera", cfg.IP))

	r := resty.New()
	r.SetBaseURL(baseURL(cfg.IP))
	r.SetLogger(logging.NewRestyLogger(log))
	if cfg.Timeout > 0 {
		r.SetTimeout(cfg.Timeout)
	}

	return &OlympusClient{
		HTTP:   r,
		Config: cfg,
		fs:     fs,
		log:    log,
	}
}

func baseURL(ip string) string {
	ip = strings.TrimRight(strings.TrimSpace(ip), "/")
	if strings.Contains(ip, "://") {
		return ip
	}
	return "http://" + ip
}

func (c *OlympusClient) url(path string) string {
	return c.HTTP.BaseURL + path
}

// get performs a GET and reads the whole body, mapping transport failures and
// non-2xx answers to CommunicationError.
func (c *OlympusClient) get(ctx context.Context, path string) (*resty.Response, error) {
	c.log.Debug("GET", slog.String("path", path))

	resp, err := c.HTTP.R().
		SetContext(ctx).
		Get(path)

	if err != nil {
		return nil, &CommunicationError{URL: c.url(path), Err: err}
	}

	if !resp.IsSuccess() {
		return nil, &CommunicationError{URL: c.url(path), StatusCode: resp.StatusCode()}
	}

	return resp, nil
}
