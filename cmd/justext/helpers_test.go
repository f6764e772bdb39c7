package main

import (
	"context"
	"os"
)

func testContext() context.Context {
	return context.Background()
}

func writeFile(path, contents string) error {
	return os.WriteFile(path, []byte(contents), 0644)
}
