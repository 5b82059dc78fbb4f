package helper

import (
	"log"
	"os"
	"path/filepath"
	"time"

	"park_manager/database"

	"github.com/go-co-op/gocron/v2"
)

var backupScheduler gocron.Scheduler

// BackupData copies every collection file into a dated directory under
// backups/. Collections are small enough that a full copy per day is fine.
func BackupData() {
	if database.DB == nil {
		return
	}
	src := database.DB.Dir()
	dst := filepath.Join("backups", time.Now().Format("2006-01-02"))

	if err := os.MkdirAll(dst, 0o755); err != nil {
		log.Printf("backup: create %s: %v", dst, err)
		return
	}

	files, err := filepath.Glob(filepath.Join(src, "*.json"))
	if err != nil {
		log.Printf("backup: scan %s: %v", src, err)
		return
	}

	copied := 0
	for _, f := range files {
		data, err := os.ReadFile(f)
		if err != nil {
			log.Printf("backup: read %s: %v", f, err)
			continue
		}
		if err := os.WriteFile(filepath.Join(dst, filepath.Base(f)), data, 0o644); err != nil {
			log.Printf("backup: write %s: %v", filepath.Base(f), err)
			continue
		}
		copied++
	}
	log.Printf("backup: %d collection(s) copied to %s", copied, dst)
}

func StartBackupScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	backupScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(2, 0, 0),
			),
		),
		gocron.NewTask(BackupData),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Backup scheduler started (02:00 daily)")
}

func StopBackupScheduler() {
	if backupScheduler != nil {
		backupScheduler.Shutdown()
	}
}
