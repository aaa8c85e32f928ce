// Package sqlstore persists recordings in a SQLite database so they can be played back later.
package sqlstore

import (
	"errors"
	"fmt"

	"github.com/glebarez/sqlite"
	"github.com/oomph-ac/ghostplay/oerror"
	"github.com/oomph-ac/ghostplay/replay"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const frameBatchSize = 2000

// Archive stores recordings by name.
type Archive struct {
	db  *gorm.DB
	log *logrus.Logger
}

// Open opens (or creates) the archive at the path given and migrates its schema.
func Open(path string, log *logrus.Logger) (*Archive, error) {
	if log == nil {
		log = logrus.StandardLogger()
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		PrepareStmt:            true,
		SkipDefaultTransaction: true,
		CreateBatchSize:        frameBatchSize,
		Logger:                 logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open archive %q: %w", path, err)
	}
	if err := db.AutoMigrate(&recordingRow{}, &frameRow{}); err != nil {
		return nil, fmt.Errorf("migrate archive: %w", err)
	}
	log.Debugf("opened recording archive at %s", path)
	return &Archive{db: db, log: log}, nil
}

// Close closes the underlying database.
func (a *Archive) Close() error {
	sqlDB, err := a.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Save stores the recording under name, replacing any recording with the same name.
func (a *Archive) Save(name string, s replay.Store) error {
	digest := replay.Digest(s)
	err := a.db.Transaction(func(tx *gorm.DB) error {
		if err := deleteRecording(tx, name); err != nil {
			return err
		}

		rec := recordingRow{
			Name:         name,
			PlayerName:   s.PlayerName(),
			TickInterval: s.TickInterval(),
			FrameCount:   s.FrameCount(),
			Digest:       int64(digest),
		}
		if err := tx.Create(&rec).Error; err != nil {
			return err
		}
		if s.FrameCount() == 0 {
			return nil
		}

		rows := make([]frameRow, s.FrameCount())
		for i := range rows {
			rows[i] = toFrameRow(rec.ID, s.Frame(i))
		}
		return tx.CreateInBatches(rows, frameBatchSize).Error
	})
	if err != nil {
		return fmt.Errorf("save recording %q: %w", name, err)
	}

	a.log.Debugf("saved recording %s (%d frames, digest %016x)", name, s.FrameCount(), digest)
	return nil
}

// Load reads the recording stored under name. oerror.ErrNoRecording is returned if it does not exist, and
// oerror.ErrCorruptRecording if the frames read back do not match the stored digest.
func (a *Archive) Load(name string) (*replay.MemoryStore, error) {
	var rec recordingRow
	if err := a.db.Where("name = ?", name).First(&rec).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("load recording %q: %w", name, oerror.ErrNoRecording)
		}
		return nil, fmt.Errorf("load recording %q: %w", name, err)
	}

	var rows []frameRow
	if err := a.db.Where("recording_id = ?", rec.ID).Order("tick asc").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load frames of %q: %w", name, err)
	}
	if len(rows) != rec.FrameCount {
		return nil, fmt.Errorf("load recording %q: %w (expected %d frames, found %d)", name, oerror.ErrCorruptRecording, rec.FrameCount, len(rows))
	}

	frames := make([]replay.Frame, len(rows))
	for i, r := range rows {
		frames[i] = r.frame()
	}
	store, err := replay.NewMemoryStore(rec.PlayerName, rec.TickInterval, frames)
	if err != nil {
		return nil, fmt.Errorf("load recording %q: %w", name, err)
	}
	if replay.Digest(store) != uint64(rec.Digest) {
		return nil, fmt.Errorf("load recording %q: %w (digest mismatch)", name, oerror.ErrCorruptRecording)
	}
	return store, nil
}

// Names returns the names of every stored recording in alphabetical order.
func (a *Archive) Names() ([]string, error) {
	var names []string
	if err := a.db.Model(&recordingRow{}).Order("name asc").Pluck("name", &names).Error; err != nil {
		return nil, fmt.Errorf("list recordings: %w", err)
	}
	return names, nil
}

// Delete removes the recording stored under name. Deleting a missing recording is not an error.
func (a *Archive) Delete(name string) error {
	return a.db.Transaction(func(tx *gorm.DB) error {
		return deleteRecording(tx, name)
	})
}

func deleteRecording(tx *gorm.DB, name string) error {
	var rec recordingRow
	err := tx.Where("name = ?", name).Limit(1).Find(&rec).Error
	if err != nil || rec.ID == 0 {
		return err
	}
	if err := tx.Where("recording_id = ?", rec.ID).Delete(&frameRow{}).Error; err != nil {
		return err
	}
	return tx.Delete(&rec).Error
}
