package glue

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"cloudio-glue/mapping"
	"cloudio-glue/primitive"
	"cloudio-glue/tree/runtime"
)

type logRecord struct {
	Level   slog.Level
	Message string
	Attrs   map[string]any
}

// recorder is a slog.Handler keeping every record.
type recorder struct {
	mu      sync.Mutex
	records []logRecord
}

func (r *recorder) Enabled(context.Context, slog.Level) bool { return true }

func (r *recorder) Handle(_ context.Context, rec slog.Record) error {
	attrs := make(map[string]any)
	rec.Attrs(func(a slog.Attr) bool {
		attrs[a.Key] = a.Value.Any()
		return true
	})

	r.mu.Lock()
	r.records = append(r.records, logRecord{Level: rec.Level, Message: rec.Message, Attrs: attrs})
	r.mu.Unlock()

	return nil
}

func (r *recorder) WithAttrs([]slog.Attr) slog.Handler { return r }

func (r *recorder) WithGroup(string) slog.Handler { return r }

func (r *recorder) at(level slog.Level) []logRecord {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []logRecord
	for _, rec := range r.records {
		if rec.Level == level {
			out = append(out, rec)
		}
	}

	return out
}

func (r *recorder) messages(level slog.Level) []string {
	var out []string
	for _, rec := range r.at(level) {
		out = append(out, rec.Message)
	}

	return out
}

func (r *recorder) reset() {
	r.mu.Lock()
	r.records = nil
	r.mu.Unlock()
}

// heater is a node "heater" with the Boolean attribute property.power,
// registered at an endpoint that counts publications.
type heater struct {
	endpoint  *runtime.Endpoint
	node      *runtime.Node
	power     *runtime.Attribute
	published []string
}

func newHeater(t *testing.T) *heater {
	t.Helper()

	h := &heater{endpoint: runtime.NewEndpoint(), node: runtime.NewNode("")}
	h.endpoint.OnPublish(func(topic string, _ any) {
		h.published = append(h.published, topic)
	})

	require.NoError(t, h.endpoint.AddNode("heater", h.node))

	obj := runtime.NewObject()
	require.NoError(t, h.node.AddObject("property", obj))

	_, err := obj.AddAttribute("power", primitive.TypeBoolean)
	require.NoError(t, err)

	h.power, err = h.endpoint.Attribute("heater.property.power")
	require.NoError(t, err)

	return h
}

// addAttribute adds property.<name> to the heater.
func (h *heater) addAttribute(t *testing.T, name string, typ primitive.TypeEnum) *runtime.Attribute {
	t.Helper()

	obj, ok := h.node.FindObject([]string{"property", "objects"})
	require.True(t, ok)

	_, err := obj.AddAttribute(name, typ)
	require.NoError(t, err)

	a, err := h.endpoint.Attribute("heater.property." + name)
	require.NoError(t, err)

	return a
}

func newConnector(model any, opts ...Option) (*Connector, *recorder) {
	rec := &recorder{}
	opts = append([]Option{WithLogger(slog.New(rec))}, opts...)

	return New(model, opts...), rec
}

func writePower() *mapping.Mapping {
	return mapping.New().Set("power", mapping.Descriptor{
		Topic: "property.power", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintWrite,
	})
}
