package main

var opts struct {
	File string `long:"file" description:"bench file in SLBENCH1 format" required:"true"`

	Search struct {
		MaxLanes   int     `long:"max-lanes" description:"largest lane count to consider" default:"32"`
		Lanes      int     `long:"lanes" description:"initial lane count" default:"4"`
		P          float64 `long:"p" description:"initial promotion probability" default:"0.5"`
		NodeCost   float64 `long:"node-cost" description:"cost charged per extra node per element" default:"1.0"`
		Temp       float64 `long:"temp" description:"initial temperature" default:"10"`
		Cooling    float64 `long:"cooling" description:"cooling rate" default:"0.9"`
		PerTemp    int     `long:"per-temp" description:"iterations per temperature" default:"10"`
		Iterations int     `long:"iterations" description:"maximum total iterations" default:"300"`
	} `group:"Search Options"`

	Seed    int64 `long:"seed" description:"seed for coin flips and the annealer" default:"42"`
	Verbose bool  `long:"verbose" description:"verbose mode"`
}
