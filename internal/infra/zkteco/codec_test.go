package zkteco

import (
	"encoding/binary"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPacketRoundTrip(t *testing.T) {
	original := packet{
		command:   cmdAttLogRRQ,
		sessionID: 0x1234,
		replyID:   7,
		data:      []byte{0xde, 0xad, 0xbe, 0xef},
	}

	frame := encodePacket(original)

	require.GreaterOrEqual(t, len(frame), frameHeaderLen+packetHeaderLen)
	assert.Equal(t, tcpMagic, binary.LittleEndian.Uint32(frame[0:4]))
	assert.Equal(t, uint32(len(frame)-frameHeaderLen), binary.LittleEndian.Uint32(frame[4:8]))

	decoded, err := decodePacket(frame[frameHeaderLen:])
	require.NoError(t, err)
	assert.Equal(t, original, decoded)
}

func TestDecodePacketRejectsCorruption(t *testing.T) {
	frame := encodePacket(packet{command: cmdConnect, replyID: 1})
	body := frame[frameHeaderLen:]

	// Flip one payload-adjacent byte; the checksum must catch it.
	body[len(body)-1] ^= 0xff

	_, err := decodePacket(body)
	require.ErrorIs(t, err, ErrBadChecksum)
}

func TestDecodePacketRejectsShortBody(t *testing.T) {
	_, err := decodePacket([]byte{0x01, 0x02, 0x03})
	require.ErrorIs(t, err, ErrBadFrame)
}

func TestTimeCodecRoundTrip(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	cases := []time.Time{
		time.Date(2025, 3, 10, 8, 30, 0, 0, kolkata),
		time.Date(2025, 12, 31, 23, 59, 59, 0, kolkata),
		time.Date(2000, 1, 1, 0, 0, 0, 0, kolkata),
	}

	for _, ts := range cases {
		decoded := decodeTime(encodeTime(ts), kolkata)
		assert.True(t, ts.Equal(decoded), "roundtrip of %s gave %s", ts, decoded)
	}
}

// buildAttLog assembles a device-format attendance buffer for tests.
func buildAttLog(t *testing.T, records []attRecord) []byte {
	t.Helper()

	buf := make([]byte, 4, 4+len(records)*attRecordLen)
	binary.LittleEndian.PutUint32(buf, uint32(len(records)*attRecordLen))

	for i, record := range records {
		row := make([]byte, attRecordLen)
		binary.LittleEndian.PutUint16(row[0:2], uint16(i+1))
		copy(row[2:26], record.UserID)
		binary.LittleEndian.PutUint32(row[27:31], encodeTime(record.Timestamp))
		row[31] = record.Punch
		buf = append(buf, row...)
	}

	return buf
}

func TestParseAttLog(t *testing.T) {
	kolkata, err := time.LoadLocation("Asia/Kolkata")
	require.NoError(t, err)

	want := []attRecord{
		{UserID: "101", Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, kolkata), Punch: 0},
		{UserID: "102", Timestamp: time.Date(2025, 3, 10, 18, 2, 0, 0, kolkata), Punch: 1},
	}

	records, err := parseAttLog(buildAttLog(t, want), kolkata)
	require.NoError(t, err)
	require.Len(t, records, 2)

	for i := range want {
		assert.Equal(t, want[i].UserID, records[i].UserID)
		assert.True(t, want[i].Timestamp.Equal(records[i].Timestamp))
		assert.Equal(t, want[i].Punch, records[i].Punch)
	}
}

func TestParseAttLogSkipsBlankRows(t *testing.T) {
	buf := buildAttLog(t, []attRecord{
		{UserID: "", Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
		{UserID: "101", Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
	})

	records, err := parseAttLog(buf, time.UTC)
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "101", records[0].UserID)
}

func TestParseAttLogRejectsTornBuffer(t *testing.T) {
	buf := buildAttLog(t, []attRecord{
		{UserID: "101", Timestamp: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)},
	})

	_, err := parseAttLog(buf[:len(buf)-3], time.UTC)
	require.ErrorIs(t, err, ErrBadFrame)
}

func TestParseAttLogEmptyBuffer(t *testing.T) {
	records, err := parseAttLog(nil, time.UTC)
	require.NoError(t, err)
	assert.Empty(t, records)
}
