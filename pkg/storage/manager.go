package storage

import (
	"sync"

	"github.com/shashiranjanraj/gearbay/config"
	"github.com/shashiranjanraj/gearbay/pkg/logger"
)

var (
	managerMu   sync.RWMutex
	disks       = map[string]Disk{}
	defaultDisk string
)

// Connect boots the configured disks. The local disk is always
// available; the s3 disk only when S3_BUCKET is set. Call once at
// startup.
func Connect() {
	managerMu.Lock()
	defer managerMu.Unlock()

	defaultDisk = config.Get("STORAGE_DISK", "local")
	disks["local"] = newLocalDisk()

	if config.Get("S3_BUCKET", "") != "" {
		d, err := newS3Disk()
		if err != nil {
			logger.Warn("s3 disk disabled", "error", err)
		} else {
			disks["s3"] = d
		}
	}

	if _, ok := disks[defaultDisk]; !ok {
		logger.Warn("default storage disk unavailable, falling back to local", "disk", defaultDisk)
		defaultDisk = "local"
	}
}

// Default returns the disk named by STORAGE_DISK.
func Default() Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[defaultDisk]
}

// Use returns a named disk, or nil when it is not configured.
func Use(name string) Disk {
	managerMu.RLock()
	defer managerMu.RUnlock()
	return disks[name]
}

// RegisterDisk plugs in a custom Disk implementation (used by tests).
func RegisterDisk(name string, d Disk) {
	managerMu.Lock()
	disks[name] = d
	managerMu.Unlock()
}
