package sqlstore

import (
	"time"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/oomph-ac/ghostplay/replay"
)

type recordingRow struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"uniqueIndex;not null"`
	PlayerName   string
	TickInterval float32
	FrameCount   int
	// Digest holds the bits of the recording's uint64 xxh3 digest.
	Digest    int64
	CreatedAt time.Time
}

func (recordingRow) TableName() string {
	return "recordings"
}

type frameRow struct {
	RecordingID uint `gorm:"primaryKey;autoIncrement:false"`
	Tick        int  `gorm:"primaryKey;autoIncrement:false"`

	PosX, PosY, PosZ    float32
	Pitch, Yaw, Roll    float32
	Buttons             uint32
	ViewX, ViewY, ViewZ float32
}

func (frameRow) TableName() string {
	return "frames"
}

func toFrameRow(recordingID uint, f replay.Frame) frameRow {
	return frameRow{
		RecordingID: recordingID,
		Tick:        f.Tick,
		PosX:        f.Position[0],
		PosY:        f.Position[1],
		PosZ:        f.Position[2],
		Pitch:       f.EyeAngles[0],
		Yaw:         f.EyeAngles[1],
		Roll:        f.EyeAngles[2],
		Buttons:     f.Buttons,
		ViewX:       f.ViewOffset[0],
		ViewY:       f.ViewOffset[1],
		ViewZ:       f.ViewOffset[2],
	}
}

func (r frameRow) frame() replay.Frame {
	return replay.Frame{
		Tick:       r.Tick,
		Position:   mgl32.Vec3{r.PosX, r.PosY, r.PosZ},
		EyeAngles:  mgl32.Vec3{r.Pitch, r.Yaw, r.Roll},
		Buttons:    r.Buttons,
		ViewOffset: mgl32.Vec3{r.ViewX, r.ViewY, r.ViewZ},
	}
}
