// Package paths provides the standard on-disk layout of the vdrive data directory.
//
// # Directory Structure
//
//	data/
//	  ├── drives/    (one persisted tree per drive, e.g. C.json)
//	  ├── records/   (audit log of operations and errors)
//	  ├── backups/   (snapshots taken before each folder deletion)
//	  └── logs/      (rotating diagnostic log)
//
// # Usage
//
//	layout := paths.NewLayout(cfg.Storage.DataDir)
//	name := paths.DriveFileName("C:", ".json") // "C.json"
//	file := filepath.Join(layout.DrivesDir(), name)
package paths
