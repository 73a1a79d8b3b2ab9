package glue_test

import (
	"fmt"

	"cloudio-glue/glue"
	"cloudio-glue/mapping"
	"cloudio-glue/tree/runtime"
)

type Heater struct {
	Power       bool
	Temperature float64
}

func (h *Heater) OnPowerSetFromCloud(on bool) {
	h.Power = on
	fmt.Println("power:", on)
}

func Example() {
	f, err := mapping.Parse([]byte(`
node: heater
bindings:
  power:
    topic: properties.power
    type: Boolean
    constraints: [read, write]
  temperature:
    topic: sensors.temperature
    type: Number
    constraints: read
`))
	if err != nil {
		panic(err)
	}

	c := glue.New(&Heater{Temperature: 21.5})
	if err := c.SetMappingFile(f); err != nil {
		panic(err)
	}

	e := runtime.NewEndpoint()
	e.OnPublish(func(topic string, v any) {
		fmt.Println("publish", topic, v)
	})

	if _, err := c.CreateNode(e); err != nil {
		panic(err)
	}

	if err := c.Push(nil, false); err != nil {
		panic(err)
	}

	attr, err := e.Attribute("heater.properties.power")
	if err != nil {
		panic(err)
	}

	if _, err := attr.SetValueFromCloud(true); err != nil {
		panic(err)
	}

	// Output:
	// publish heater.sensors.temperature 21.5
	// power: true
}
