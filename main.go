// Copyright
// SPDX-License-Identifier: MIT
// statepad: single-document text editor with a save/dirty lifecycle
package main

import (
    "fmt"
    "os"

    "statepad/internal/cli"
)

const Version = "0.1.0"

func main() {
    cli.SetVersion(Version)
    if err := cli.Execute(); err != nil {
        fmt.Fprintln(os.Stderr, "statepad:", err)
        os.Exit(1)
    }
}
