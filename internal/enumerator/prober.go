// internal/enumerator/prober.go
package enumerator

import (
	"context"
	"net/url"
	"time"

	"owaspkit/internal/platform/errors"
	"owaspkit/internal/platform/httpclient"
	"owaspkit/internal/platform/resilience"
	"owaspkit/internal/platform/validator"
)

// RequestSpec describe la petición; URL y Body pueden contener el marcador {}.
type RequestSpec struct {
	URL     string
	Method  string
	Body    string
	Headers map[string]string
}

// prober envía un payload y lo convierte en Record.
type prober struct {
	client   *httpclient.Client
	breaker  *resilience.CircuitBreaker
	spec     RequestSpec
	saveBody bool
	now      func() time.Time
}

// URLFor expande el marcador de la URL. El payload se escapa como segmento
// de path.
func (s RequestSpec) URLFor(payload string) string {
	return validator.ExpandPlaceholder(s.URL, url.PathEscape(payload))
}

// BodyFor expande el marcador del cuerpo; nil si no hay cuerpo.
func (s RequestSpec) BodyFor(payload string) []byte {
	if s.Body == "" {
		return nil
	}
	return []byte(validator.ExpandPlaceholder(s.Body, payload))
}

// probe retorna un error solo si el probe no llegó a enviarse: breaker
// abierto o contexto cancelado. Un fallo de transporte queda en el Record.
func (p *prober) probe(ctx context.Context, index int, payload string) (Record, error) {
	rec := Record{
		Index:   index,
		Payload: payload,
		URL:     p.spec.URLFor(payload),
	}
	body := p.spec.BodyFor(payload)

	start := p.now()
	var resp *httpclient.Response
	err := p.breaker.Execute(func() error {
		var err error
		resp, err = p.client.Do(ctx, p.spec.Method, rec.URL, body, p.spec.Headers)
		return err
	}, errors.IsConnectionFailed)
	rec.Duration = p.now().Sub(start)

	switch {
	case err == nil:
		rec.Status = resp.StatusCode
		if p.saveBody {
			rec.Body = EscapeBody(resp.Body)
		}
		return rec, nil
	case errors.Is(err, resilience.ErrCircuitOpen):
		return rec, err
	case ctx.Err() != nil:
		return rec, ctx.Err()
	default:
		rec.Error = err.Error()
		return rec, nil
	}
}
