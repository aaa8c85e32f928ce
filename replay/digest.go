package replay

import (
	"encoding/binary"
	"math"

	"github.com/zeebo/xxh3"
)

// Digest returns an xxh3 hash over the tick interval and every frame of the store. Two stores with the
// same digest play back identically.
func Digest(s Store) uint64 {
	h := xxh3.New()
	buf := make([]byte, 0, 48)

	buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(s.TickInterval()))
	_, _ = h.Write(buf)

	for i := 0; i < s.FrameCount(); i++ {
		f := s.Frame(i)
		buf = buf[:0]
		buf = binary.LittleEndian.AppendUint32(buf, uint32(f.Tick))
		for _, v := range [...]float32{
			f.Position[0], f.Position[1], f.Position[2],
			f.EyeAngles[0], f.EyeAngles[1], f.EyeAngles[2],
			f.ViewOffset[0], f.ViewOffset[1], f.ViewOffset[2],
		} {
			buf = binary.LittleEndian.AppendUint32(buf, math.Float32bits(v))
		}
		buf = binary.LittleEndian.AppendUint32(buf, f.Buttons)
		_, _ = h.Write(buf)
	}
	return h.Sum64()
}
