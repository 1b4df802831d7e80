package webhook

import (
	"strings"
	"time"

	"github.com/go-kit/log"
	"github.com/hashicorp/go-retryablehttp"
	util_http "github.com/lethe-etl/lethe/pkg/util/http"
	"github.com/pkg/errors"
)

type Config struct {
	URL      string        `yaml:"url"`
	Timeout  time.Duration `yaml:"timeout"`
	RetryMax int           `yaml:"retry_max"`
}

// WebhookClient posts run notifications to a fixed URL with retries. The
// channel name travels as a header so one endpoint can serve several
// pipelines.
type WebhookClient struct {
	cfg        Config
	httpClient *retryablehttp.Client
	log        log.Logger
}

func NewWebhookClient(cfg Config, log log.Logger) *WebhookClient {
	c := retryablehttp.NewClient()
	c.RetryMax = cfg.RetryMax
	c.HTTPClient.Timeout = cfg.Timeout
	c.Logger = nil

	return &WebhookClient{
		cfg:        cfg,
		httpClient: c,
		log:        log,
	}
}

func (w *WebhookClient) Publish(channel string, msg string) error {
	req, err := retryablehttp.NewRequest("POST", w.cfg.URL, strings.NewReader(msg))
	if err != nil {
		return errors.Wrap(err, "webhook create request")
	}
	req.Header.Set("Content-Type", "text/plain")
	req.Header.Set("X-Lethe-Channel", channel)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "webhook publish")
	}
	defer resp.Body.Close()

	if err := util_http.EnsureSuccessStatusCode(resp); err != nil {
		return errors.Wrap(err, "webhook publish")
	}

	return nil
}
