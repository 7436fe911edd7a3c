package builder_test

import (
	"fmt"

	"github.com/matzehuels/composerviz/pkg/builder"
	"github.com/matzehuels/composerviz/pkg/composer"
)

func ExampleBuilder_Build() {
	root := &composer.Package{
		Name:    "proj/app",
		Require: composer.Links{{Target: "vendor/lib", Constraint: "^1.0"}},
	}
	lock := &composer.Lock{
		Packages: []composer.Package{{
			Name:    "vendor/lib",
			Version: "1.4.0",
			Require: composer.Links{{Target: "php", Constraint: ">=8.1"}},
		}},
	}

	g, err := builder.New(builder.Options{NoDev: true}).Build(root, lock)
	if err != nil {
		fmt.Println("Error:", err)
		return
	}
	for _, v := range g.Vertices() {
		fmt.Println(v.Label())
	}
	for _, e := range g.Edges() {
		fmt.Printf("%s -> %s (%s)\n", e.From, e.To, e.Attrs["label"])
	}
	// Output:
	// proj/app
	// vendor/lib: 1.4.0
	// php
	// proj/app -> vendor/lib (^1.0)
	// vendor/lib -> php (>=8.1)
}

func ExampleClassify() {
	for _, name := range []string{"monolog/monolog", "ext-intl", "php-64bit", "composer-plugin-api", "hhvm"} {
		t, err := builder.Classify(name)
		if err != nil {
			fmt.Println(name, "error")
			continue
		}
		fmt.Println(name, t)
	}
	// Output:
	// monolog/monolog regular
	// ext-intl extension
	// php-64bit php-runtime
	// composer-plugin-api composer-platform
	// hhvm error
}
