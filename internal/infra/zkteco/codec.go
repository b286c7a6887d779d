// Package zkteco implements the binary TCP protocol spoken by ZKTeco
// biometric terminals on port 4370.
package zkteco

import (
	"bytes"
	"encoding/binary"
	"time"

	"timeclock/internal/errors"
)

// Commands and replies used by the punch-log exchange.
const (
	cmdConnect   uint16 = 1000
	cmdExit      uint16 = 1001
	cmdAttLogRRQ uint16 = 13
	cmdAckOK     uint16 = 2000
	cmdAckError  uint16 = 2001
	cmdPrepare   uint16 = 1500
	cmdData      uint16 = 1501
	cmdFreeData  uint16 = 1502
	cmdAckUnauth uint16 = 2005
)

// Every TCP frame starts with this machine header.
const tcpMagic uint32 = 0x7d825050

const (
	frameHeaderLen  = 8 // magic + payload length
	packetHeaderLen = 8 // command, checksum, session, reply
	attRecordLen    = 40
	maxPayloadLen   = 1 << 20
)

var (
	// ErrBadFrame reports a response that is not a valid terminal frame.
	ErrBadFrame = errors.New("zkteco: malformed frame")
	// ErrBadChecksum reports a frame whose checksum does not verify.
	ErrBadChecksum = errors.New("zkteco: checksum mismatch")
)

// packet is one decoded command packet.
type packet struct {
	command   uint16
	sessionID uint16
	replyID   uint16
	data      []byte
}

// encodePacket frames a command packet for the wire: machine header, then the
// 8-byte packet header with its ones'-complement checksum, then the payload.
func encodePacket(p packet) []byte {
	body := make([]byte, packetHeaderLen+len(p.data))
	binary.LittleEndian.PutUint16(body[0:2], p.command)
	// Checksum at body[2:4] computed over the packet with the field zeroed.
	binary.LittleEndian.PutUint16(body[4:6], p.sessionID)
	binary.LittleEndian.PutUint16(body[6:8], p.replyID)
	copy(body[packetHeaderLen:], p.data)
	binary.LittleEndian.PutUint16(body[2:4], checksum(body))

	frame := make([]byte, frameHeaderLen+len(body))
	binary.LittleEndian.PutUint32(frame[0:4], tcpMagic)
	binary.LittleEndian.PutUint32(frame[4:8], uint32(len(body)))
	copy(frame[frameHeaderLen:], body)

	return frame
}

// decodePacket parses and verifies one packet body (the frame payload).
func decodePacket(body []byte) (packet, error) {
	if len(body) < packetHeaderLen {
		return packet{}, ErrBadFrame
	}

	p := packet{
		command:   binary.LittleEndian.Uint16(body[0:2]),
		sessionID: binary.LittleEndian.Uint16(body[4:6]),
		replyID:   binary.LittleEndian.Uint16(body[6:8]),
	}
	if len(body) > packetHeaderLen {
		p.data = append([]byte(nil), body[packetHeaderLen:]...)
	}

	want := binary.LittleEndian.Uint16(body[2:4])
	scratch := append([]byte(nil), body...)
	scratch[2], scratch[3] = 0, 0
	if checksum(scratch) != want {
		return packet{}, ErrBadChecksum
	}

	return p, nil
}

// checksum folds the packet into 16-bit little-endian words, sums them with
// end-around carry and returns the ones' complement. Odd trailing byte counts
// as a low byte.
func checksum(body []byte) uint16 {
	var sum uint32

	for len(body) >= 2 {
		sum += uint32(binary.LittleEndian.Uint16(body[:2]))
		body = body[2:]
	}
	if len(body) == 1 {
		sum += uint32(body[0])
	}

	for sum > 0xffff {
		sum = (sum & 0xffff) + (sum >> 16)
	}

	return ^uint16(sum)
}

// attRecord is one raw punch as stored on the terminal.
type attRecord struct {
	UserID    string
	Timestamp time.Time
	Punch     byte
}

// parseAttLog splits the downloaded attendance buffer into records. The
// buffer opens with a 4-byte total size, then fixed 40-byte rows: numeric
// user id as a NUL-padded 24-byte string, a verify byte, the packed
// timestamp and the punch type.
func parseAttLog(buf []byte, loc *time.Location) ([]attRecord, error) {
	if len(buf) < 4 {
		return nil, nil
	}
	buf = buf[4:]

	if len(buf)%attRecordLen != 0 {
		return nil, errors.Wrapf(ErrBadFrame, "attendance buffer length %d", len(buf))
	}

	records := make([]attRecord, 0, len(buf)/attRecordLen)
	for off := 0; off < len(buf); off += attRecordLen {
		row := buf[off : off+attRecordLen]

		userID := string(bytes.TrimRight(row[2:26], "\x00"))
		if userID == "" {
			continue
		}

		records = append(records, attRecord{
			UserID:    userID,
			Timestamp: decodeTime(binary.LittleEndian.Uint32(row[27:31]), loc),
			Punch:     row[31],
		})
	}

	return records, nil
}

// decodeTime unpacks the terminal's packed calendar encoding: seconds,
// minutes, hours, day-of-month, month and years-since-2000 stacked by
// mixed-radix division.
func decodeTime(packed uint32, loc *time.Location) time.Time {
	t := packed

	second := int(t % 60)
	t /= 60
	minute := int(t % 60)
	t /= 60
	hour := int(t % 24)
	t /= 24
	day := int(t%31) + 1
	t /= 31
	month := time.Month(t%12) + 1
	t /= 12
	year := int(t) + 2000

	return time.Date(year, month, day, hour, minute, second, 0, loc)
}

// encodeTime is the inverse of decodeTime. The test bench uses it to build
// fixture buffers; real terminals do this on-device.
func encodeTime(ts time.Time) uint32 {
	packed := uint32(ts.Year() - 2000)
	packed = packed*12 + uint32(ts.Month()-1)
	packed = packed*31 + uint32(ts.Day()-1)
	packed = packed*24 + uint32(ts.Hour())
	packed = packed*60 + uint32(ts.Minute())
	packed = packed*60 + uint32(ts.Second())

	return packed
}
