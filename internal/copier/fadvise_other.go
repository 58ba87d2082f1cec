//go:build !linux

package copier

import "os"

func adviseSequential(*os.File) {}
