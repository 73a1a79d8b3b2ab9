package glue

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cloudio-glue/mapping"
	"cloudio-glue/primitive"
	"cloudio-glue/topic"
	"cloudio-glue/tree"
	"cloudio-glue/tree/runtime"
)

type createdModel struct {
	created int
}

func (m *createdModel) OnNodeCreated() { m.created++ }

func TestSetMapping_Malformed(t *testing.T) {
	h := newHeater(t)
	c, _ := newConnector(&struct{}{})
	require.NoError(t, c.SetBuddy(h.node))

	err := c.SetMapping(mapping.New().Set("name", mapping.Descriptor{Topic: "forest.priority"}))
	require.Error(t, err)
	assert.True(t, errors.Is(err, mapping.ErrMalformedBinding))

	var be *mapping.BindingError
	require.ErrorAs(t, err, &be)
	assert.Equal(t, "name", be.Name)
	assert.Equal(t, "constraints", be.Field)

	err = c.SetMapping(mapping.New().Set("enable", mapping.Descriptor{
		Type: primitive.TypeBoolean, Constraints: mapping.ConstraintWrite,
	}))
	assert.True(t, errors.Is(err, mapping.ErrMalformedBinding))

	assert.True(t, errors.Is(c.SetMapping(nil), mapping.ErrMalformedBinding))
	assert.Nil(t, c.Mapping())
}

func TestSetBuddy_Once(t *testing.T) {
	c, _ := newConnector(&struct{}{})

	require.Error(t, c.SetBuddy(nil))
	require.NoError(t, c.SetBuddy(runtime.NewNode("a")))

	err := c.SetBuddy(runtime.NewNode("b"))
	assert.ErrorIs(t, err, ErrAlreadyBound)
	assert.Equal(t, "a", c.Buddy().Name())
}

func TestWiring_EitherOrder(t *testing.T) {
	t.Run("mapping first", func(t *testing.T) {
		h := newHeater(t)
		m := &createdModel{}
		c, _ := newConnector(m)

		require.NoError(t, c.SetMapping(writePower()))
		assert.Equal(t, 0, h.power.Listeners())
		assert.Equal(t, 0, m.created)

		require.NoError(t, c.SetBuddy(h.node))
		assert.Equal(t, 1, h.power.Listeners())
		assert.Equal(t, 1, m.created)
	})

	t.Run("buddy first", func(t *testing.T) {
		h := newHeater(t)
		m := &createdModel{}
		c, _ := newConnector(m)

		require.NoError(t, c.SetBuddy(h.node))
		assert.Equal(t, 0, m.created)

		require.NoError(t, c.SetMapping(writePower()))
		assert.Equal(t, 1, h.power.Listeners())
		assert.Equal(t, 1, m.created)

		// rewiring does not notify again
		require.NoError(t, c.SetMapping(writePower()))
		assert.Equal(t, 1, m.created)
	})
}

func TestSetMapping_DetachesPreviousListeners(t *testing.T) {
	h := newHeater(t)
	enable := h.addAttribute(t, "enable", primitive.TypeBoolean)

	c, _ := newConnector(&struct{}{})
	require.NoError(t, c.SetBuddy(h.node))
	require.NoError(t, c.SetMapping(writePower()))
	assert.Equal(t, 1, h.power.Listeners())

	require.NoError(t, c.SetMapping(mapping.New().Set("enable", mapping.Descriptor{
		Topic: "property.enable", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintWrite,
	})))

	assert.Equal(t, 0, h.power.Listeners())
	assert.Equal(t, 1, enable.Listeners())
}

func TestWiring_OnlyWriteBindingsListen(t *testing.T) {
	h := newHeater(t)
	c, _ := newConnector(&struct{}{})

	require.NoError(t, c.SetBuddy(h.node))
	require.NoError(t, c.SetMapping(mapping.New().Set("power", mapping.Descriptor{
		Topic: "property.power", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintRead,
	})))

	assert.Equal(t, 0, h.power.Listeners())
}

func TestWiring_SharedAttributeListensOnce(t *testing.T) {
	h := newHeater(t)
	c, _ := newConnector(&struct{}{})

	m := writePower().Set("alias", mapping.Descriptor{
		ObjectName: "property", AttributeName: "power", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintWrite,
	})

	require.NoError(t, c.SetBuddy(h.node))
	require.NoError(t, c.SetMapping(m))

	assert.Equal(t, 1, h.power.Listeners())
}

func TestWiring_UnknownLegacyAttribute(t *testing.T) {
	h := newHeater(t)
	c, rec := newConnector(&struct{ Enable bool }{Enable: true})

	require.NoError(t, c.SetBuddy(h.node))
	require.NoError(t, c.SetMapping(mapping.New().Set("enable", mapping.Descriptor{
		ObjectName: "test", AttributeName: "unknown", Type: primitive.TypeBoolean,
		Constraints: mapping.ConstraintRead | mapping.ConstraintWrite,
	})))

	warnings := rec.messages(slog.LevelWarn)
	require.Len(t, warnings, 2)
	assert.Equal(t, "object/attribute addressing will be replaced by topic in future releases", warnings[0])
	assert.Equal(t, "could not map to cloud.iO attribute, attribute not found", warnings[1])

	notFound := rec.at(slog.LevelWarn)[1]
	assert.Equal(t, "test", notFound.Attrs["object"])
	assert.Equal(t, "unknown", notFound.Attrs["attribute"])
	assert.Equal(t, "replace object and attribute with topic <object>.<attribute>", rec.at(slog.LevelWarn)[0].Attrs["hint"])

	_, ok := h.node.FindObject([]string{"test", "objects"})
	assert.False(t, ok)

	rec.reset()
	require.NoError(t, c.Push(nil, true))
	assert.Empty(t, h.published)
	assert.Equal(t, []string{"did not find cloud.iO attribute for model attribute"}, rec.messages(slog.LevelWarn))
}

func TestWiring_AttributeUnderNode(t *testing.T) {
	h := newHeater(t)
	c, rec := newConnector(&struct{}{})

	require.NoError(t, c.SetBuddy(h.node))
	require.NoError(t, c.SetMapping(mapping.New().Set("power", mapping.Descriptor{
		Topic: "heater.power", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintWrite,
	})))

	assert.Equal(t,
		[]string{"could not map to cloud.iO attribute, attribute must be inside an object"},
		rec.messages(slog.LevelWarn))
	assert.False(t, c.AttributeHasChanged(h.power, true))
}

func TestWithTreeBuilding(t *testing.T) {
	node := runtime.NewNode("heater")
	c, _ := newConnector(&struct{}{}, WithTreeBuilding())

	require.NoError(t, c.SetMapping(writePower()))
	require.NoError(t, c.SetBuddy(node))

	a, err := node.FindAttribute([]string{"power", "attributes", "property", "objects"})
	require.NoError(t, err)
	assert.Equal(t, 1, a.(*runtime.Attribute).Listeners())
}

func TestLocationStack(t *testing.T) {
	c, _ := newConnector(&struct{}{})
	d := &mapping.Descriptor{Topic: "cloudio-node.object.attribute"}

	s, err := c.LocationStack(d)
	require.NoError(t, err)
	assert.Equal(t, topic.Stack{"attribute", "attributes", "object", "objects", "cloudio-node", "objects"}, s)

	require.NoError(t, c.SetBuddy(runtime.NewNode("cloudio-node")))

	s, err = c.LocationStack(d)
	require.NoError(t, err)
	assert.Equal(t, topic.Stack{"attribute", "attributes", "object", "objects"}, s)

	s, err = c.LocationStack(&mapping.Descriptor{ObjectName: "forest", AttributeName: "priority"})
	require.NoError(t, err)
	assert.Equal(t, topic.Stack{"priority", "attributes", "forest", "objects"}, s)
}

type Boiler struct {
	createdModel
	Running bool
}

func TestCreateNode(t *testing.T) {
	m := &Boiler{Running: true}
	c, _ := newConnector(m)
	require.NoError(t, c.SetMapping(mapping.New().
		Set("running", mapping.Descriptor{Topic: "property.running", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintRead}).
		Set("setpoint", mapping.Descriptor{Topic: "property.limits.setpoint", Type: primitive.TypeNumber, Constraints: mapping.ConstraintWrite}).
		Set("priority", mapping.Descriptor{ObjectName: "forest", AttributeName: "priority", Type: primitive.TypeInteger, Constraints: mapping.ConstraintRead})))

	e := runtime.NewEndpoint()
	node, err := c.CreateNode(e)
	require.NoError(t, err)

	registered, ok := e.Node("Boiler")
	require.True(t, ok)
	assert.Same(t, registered, node)
	assert.Same(t, node, c.Buddy())
	assert.Equal(t, []string{tree.NodeInterface}, node.Interfaces())
	assert.Equal(t, 1, m.created)

	var buf bytes.Buffer
	require.NoError(t, runtime.Fprint(&buf, node))
	assert.Equal(t, `Boiler (NodeInterface)
  property/
    running: Boolean = false
    limits/
      setpoint: Number = 0
  forest/
    priority: Integer = 0
`, buf.String())

	setpoint, err := e.Attribute("Boiler.property.limits.setpoint")
	require.NoError(t, err)
	assert.Equal(t, 1, setpoint.Listeners())

	_, err = c.CreateNode(e)
	assert.ErrorIs(t, err, ErrAlreadyBound)
}

func TestCreateNode_Incomplete(t *testing.T) {
	m := &Boiler{}
	c, rec := newConnector(m)
	require.NoError(t, c.SetMapping(mapping.New().
		Set("running", mapping.Descriptor{Topic: "property.running", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintRead}).
		Set("flat", mapping.Descriptor{Topic: "flat", Type: primitive.TypeInteger, Constraints: mapping.ConstraintRead})))

	e := runtime.NewEndpoint()
	node, err := c.CreateNode(e)
	require.ErrorIs(t, err, ErrAddressResolution)
	assert.Contains(t, err.Error(), `node "Boiler" is incomplete`)
	assert.Contains(t, err.Error(), `binding "flat"`)

	require.NotNil(t, node)
	assert.Same(t, node, c.Buddy())
	assert.Equal(t, 1, m.created)

	_, err = e.Attribute("Boiler.property.running")
	require.NoError(t, err)
	assert.Contains(t, rec.messages(slog.LevelWarn), "could not create cloud.iO attribute")
}

func TestCreateNode_Names(t *testing.T) {
	tests := []struct {
		name  string
		model any
		opts  []Option
		file  *mapping.File
		want  string
	}{
		{name: "type name", model: &Boiler{}, want: "Boiler"},
		{name: "option", model: &Boiler{}, opts: []Option{WithNodeName("boiler-1")}, want: "boiler-1"},
		{name: "file", model: &Boiler{}, file: &mapping.File{Node: "from-file"}, want: "from-file"},
		{
			name: "option wins over file", model: &Boiler{}, opts: []Option{WithNodeName("boiler-1")},
			file: &mapping.File{Node: "from-file"}, want: "boiler-1",
		},
		{name: "anonymous", model: &struct{}{}, want: "Model"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, _ := newConnector(tt.model, tt.opts...)

			f := tt.file
			if f == nil {
				f = &mapping.File{}
			}

			f.Bindings = mapping.New().Set("running", mapping.Descriptor{
				Topic: "property.running", Type: primitive.TypeBoolean, Constraints: mapping.ConstraintRead,
			})
			require.NoError(t, c.SetMappingFile(f))

			e := runtime.NewEndpoint()
			_, err := c.CreateNode(e)
			require.NoError(t, err)

			_, ok := e.Node(tt.want)
			assert.True(t, ok)
			assert.Equal(t, tt.want, c.NodeName())
		})
	}
}

func TestCreateNode_WithoutMapping(t *testing.T) {
	c, rec := newConnector(&Boiler{})

	node, err := c.CreateNode(runtime.NewEndpoint())
	assert.Nil(t, node)
	assert.ErrorIs(t, err, ErrNoMapping)
	assert.Equal(t,
		[]string{"attribute mapping needs to be initialized to create cloud.iO node"},
		rec.messages(slog.LevelWarn))
}

func TestCreateNode_DuplicateNodeName(t *testing.T) {
	e := runtime.NewEndpoint()
	require.NoError(t, e.AddNode("Boiler", runtime.NewNode("")))

	c, _ := newConnector(&Boiler{})
	require.NoError(t, c.SetMapping(writePower()))

	_, err := c.CreateNode(e)
	assert.ErrorIs(t, err, tree.ErrExists)
	assert.Nil(t, c.Buddy())
}
