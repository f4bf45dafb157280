package settingsexpr_test

import (
	"fmt"
	"os"

	"github.com/dmitrymomot/settingsexpr"
	"github.com/dmitrymomot/settingsexpr/pkg/builder"
	"github.com/dmitrymomot/settingsexpr/pkg/catalog"
	"github.com/dmitrymomot/settingsexpr/pkg/export"
	"github.com/dmitrymomot/settingsexpr/pkg/level"
)

var rollingFile = catalog.MustDefine(catalog.SurfaceSink, "Sinks", "RollingFile",
	catalog.Param[string]("pathFormat"),
	catalog.Optional("retainedFileCountLimit", 31),
)

func Example() {
	reg := catalog.NewRegistry()
	reg.MustRegister(rollingFile)

	s := settingsexpr.New(settingsexpr.WithRegistry(reg))
	pairs, err := s.SerializeToKeyValuePairs(func(lc builder.LoggerConfiguration) builder.LoggerConfiguration {
		return lc.
			MinimumLevel().Debug().
			MinimumLevel().Override("Microsoft", level.Warning).
			Enrich().WithProperty("Application", "billing", false).
			WriteTo().Sink(rollingFile.Invoke("logs/app.log"))
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for _, p := range pairs {
		fmt.Printf("%s=%s\n", p.Key, p.Value)
	}
	// Output:
	// minimum-level=Debug
	// minimum-level:override:Microsoft=Warning
	// enrich:with-property:Application=billing
	// using:Sinks=Sinks
	// write-to:RollingFile.pathFormat=logs/app.log
}

func ExampleSerializer_Pairs() {
	seq, err := settingsexpr.New().Pairs(func(lc builder.LoggerConfiguration) builder.LoggerConfiguration {
		return lc.MinimumLevel().Is(level.Information).Enrich().FromLogContext()
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	for k, v := range seq {
		fmt.Printf("%q=%q\n", k, v)
	}
	// Output:
	// "minimum-level"="Information"
	// "enrich:FromLogContext"=""
}

func Example_dotenv() {
	pairs, err := settingsexpr.New().SerializeToKeyValuePairs(func(lc builder.LoggerConfiguration) builder.LoggerConfiguration {
		return lc.
			MinimumLevel().Warning().
			Enrich().WithProperty("Port", 8080, false).
			Enrich().WithProperty("Debug", true, false)
	})
	if err != nil {
		fmt.Println(err)
		return
	}

	if err := export.WriteDotenv(os.Stdout, pairs, "Serilog"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// SERILOG__MINIMUM_LEVEL="Warning"
	// SERILOG__ENRICH__WITH_PROPERTY__PORT=8080
	// SERILOG__ENRICH__WITH_PROPERTY__DEBUG="True"
}
