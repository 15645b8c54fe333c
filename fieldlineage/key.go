package fieldlineage

import (
	"encoding/binary"
	"strconv"

	"github.com/minio/highwayhash"
)

// instanceKeySalt is a fixed, arbitrary 32-byte key. highwayhash requires
// one of exactly that length; there's no secret to protect here, so a
// constant salt is sufficient to spread instance keys across the hash
// space and keep them stable across runs.
var instanceKeySalt = []byte("splfield-fieldlineage-instance-k")[:32]

// NewInstanceKey derives an opaque identifier for a FieldLineage instance
// from the triple that disambiguates re-created fields sharing a name
// (spec.md §3: "names alone do not identify"): the field name, the stage
// that created it, and the source offset of that creation.
func NewInstanceKey(fieldName string, stageIndex, sourceOffset int) uint64 {
	buf := make([]byte, 0, len(fieldName)+20)
	buf = append(buf, fieldName...)
	buf = append(buf, 0)
	buf = strconv.AppendInt(buf, int64(stageIndex), 10)
	buf = append(buf, 0)
	var offsetBytes [8]byte
	binary.LittleEndian.PutUint64(offsetBytes[:], uint64(sourceOffset))
	buf = append(buf, offsetBytes[:]...)
	return highwayhash.Sum64(buf, instanceKeySalt)
}
