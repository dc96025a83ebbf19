package config

import "os"

func IsDebug() bool {
	return os.Getenv("GRUB_DEBUG") == "1"
}
