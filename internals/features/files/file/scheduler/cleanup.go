package scheduler

import (
	"log"
	"os"
	"path/filepath"

	"github.com/robfig/cron/v3"
	"gorm.io/gorm"
)

// StartOrphanFileSweep menjadwalkan penyapuan harian: file di direktori upload
// yang tidak punya row di tabel files dihapus. File yatim muncul kalau insert
// metadata gagal setelah file tertulis, atau proses mati di tengah.
func StartOrphanFileSweep(db *gorm.DB, dir string) *cron.Cron {
	c := cron.New()

	_, err := c.AddFunc("0 3 * * *", func() {
		if err := sweepOrphanFiles(db, dir); err != nil {
			log.Printf("[ERROR] sweep file yatim: %v", err)
		}
	})
	if err != nil {
		log.Printf("[ERROR] daftar jadwal sweep: %v", err)
		return c
	}

	c.Start()
	log.Println("⏱️ Sweep file yatim terjadwal (harian 03:00)")
	return c
}

func sweepOrphanFiles(db *gorm.DB, dir string) error {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	var known []string
	if err := db.Table("files").Pluck("filename", &known).Error; err != nil {
		return err
	}
	knownSet := make(map[string]struct{}, len(known))
	for _, name := range known {
		knownSet[name] = struct{}{}
	}

	removed := 0
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, ok := knownSet[entry.Name()]; ok {
			continue
		}
		if err := os.Remove(filepath.Join(dir, entry.Name())); err != nil {
			log.Printf("[WARN] gagal hapus file yatim %s: %v", entry.Name(), err)
			continue
		}
		removed++
	}
	if removed > 0 {
		log.Printf("🧹 Sweep selesai: %d file yatim dihapus", removed)
	}
	return nil
}
