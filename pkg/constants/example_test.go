package constants_test

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/agentstation/labelkit/pkg/constants"
)

// Example demonstrates marking a directory as a disposable test area.
func Example() {
	dir, err := os.MkdirTemp("", "labelkit-example")
	if err != nil {
		panic(err)
	}
	defer os.RemoveAll(dir)

	marker := filepath.Join(dir, constants.MarkerFileName)
	if err := os.WriteFile(marker, nil, constants.FilePermissions); err != nil {
		panic(err)
	}

	fmt.Printf("marked with %s\n", constants.MarkerFileName)
	fmt.Printf("fixtures named %s0.%s\n", constants.FixtureBaseName, constants.DefaultExtension)

	// Output:
	// marked with testmarker
	// fixtures named demofile0.csv
}
