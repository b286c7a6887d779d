package zkteco

import (
	"context"
	"encoding/binary"
	"io"
	"log/slog"
	"net"
	"time"

	"timeclock/config"
	"timeclock/internal/domain/entity"
	"timeclock/internal/domain/service"
	"timeclock/internal/errors"

	"go.uber.org/fx"
)

// DialerParams holds dependencies for the terminal dialer, injected by Fx.
type DialerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// dialer opens authenticated sessions against ZKTeco terminals. Terminals
// keep naive local clocks, so decoded punch timestamps carry the fleet's
// configured location.
type dialer struct {
	loc    *time.Location
	logger *slog.Logger
}

// NewDialer creates a new terminal dialer instance.
func NewDialer(params DialerParams) (service.TerminalDialer, error) {
	loc, err := params.Config.Poller.Location()
	if err != nil {
		return nil, err
	}

	return &dialer{
		loc:    loc,
		logger: params.Logger,
	}, nil
}

// Dial connects and performs the CMD_CONNECT handshake. Any failure here
// means the terminal is unreachable as far as the poller is concerned.
func (d *dialer) Dial(ctx context.Context, terminal *entity.Terminal) (service.TerminalSession, error) {
	var nd net.Dialer

	conn, err := nd.DialContext(ctx, "tcp", terminal.Addr())
	if err != nil {
		return nil, errors.Wrapf(service.ErrTerminalUnreachable, "dial %s: %v", terminal.Addr(), err)
	}

	if deadline, ok := ctx.Deadline(); ok {
		if err := conn.SetDeadline(deadline); err != nil {
			conn.Close()

			return nil, errors.Wrap(err, "failed to set connection deadline")
		}
	}

	sess := &session{
		conn:     conn,
		terminal: terminal,
		loc:      d.loc,
		logger: d.logger.With(
			slog.String("terminal", terminal.Name),
			slog.String("addr", terminal.Addr())),
	}

	if err := sess.handshake(); err != nil {
		conn.Close()

		return nil, errors.Wrapf(service.ErrTerminalUnreachable, "handshake with %s: %v", terminal.Addr(), err)
	}

	return sess, nil
}

// session is one live connection to a terminal.
type session struct {
	conn     net.Conn
	terminal *entity.Terminal
	loc      *time.Location
	logger   *slog.Logger

	sessionID uint16
	replyID   uint16
}

func (s *session) handshake() error {
	resp, err := s.roundTrip(cmdConnect, nil)
	if err != nil {
		return err
	}

	switch resp.command {
	case cmdAckOK:
		s.sessionID = resp.sessionID

		return nil
	case cmdAckUnauth:
		return errors.New("terminal requires a comm key")
	default:
		return errors.Errorf("unexpected connect reply %d", resp.command)
	}
}

// FetchPunches downloads the terminal's attendance log. Small logs come back
// in a single data packet; larger ones are announced with CMD_PREPARE_DATA
// and streamed in chunks.
func (s *session) FetchPunches(ctx context.Context) ([]entity.RawPunch, error) {
	if deadline, ok := ctx.Deadline(); ok {
		if err := s.conn.SetDeadline(deadline); err != nil {
			return nil, errors.Wrap(err, "failed to set connection deadline")
		}
	}

	resp, err := s.roundTrip(cmdAttLogRRQ, nil)
	if err != nil {
		return nil, errors.Wrap(err, "attendance log request failed")
	}

	var buf []byte
	switch resp.command {
	case cmdData:
		buf = resp.data
	case cmdPrepare:
		buf, err = s.readPrepared(resp)
		if err != nil {
			return nil, err
		}
	case cmdAckOK:
		// Empty log.
		return nil, nil
	case cmdAckError:
		return nil, errors.New("terminal refused attendance log request")
	default:
		return nil, errors.Errorf("unexpected attendance log reply %d", resp.command)
	}

	records, err := parseAttLog(buf, s.loc)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse attendance log")
	}

	punches := make([]entity.RawPunch, 0, len(records))
	for _, record := range records {
		punches = append(punches, entity.RawPunch{
			BiometricID: record.UserID,
			Timestamp:   record.Timestamp,
			TerminalID:  s.terminal.ID,
		})
	}

	return punches, nil
}

// readPrepared accumulates the CMD_DATA chunks announced by a
// CMD_PREPARE_DATA reply, then releases the device-side buffer.
func (s *session) readPrepared(prepare packet) ([]byte, error) {
	if len(prepare.data) < 4 {
		return nil, ErrBadFrame
	}

	total := binary.LittleEndian.Uint32(prepare.data[:4])
	if total > maxPayloadLen {
		return nil, errors.Errorf("terminal announced oversized log: %d bytes", total)
	}

	buf := make([]byte, 0, total)
	for uint32(len(buf)) < total {
		chunk, err := s.readPacket()
		if err != nil {
			return nil, errors.Wrap(err, "failed to read attendance data chunk")
		}
		if chunk.command != cmdData {
			return nil, errors.Errorf("unexpected packet %d inside data stream", chunk.command)
		}

		buf = append(buf, chunk.data...)
	}

	// Best effort: free the device-side transfer buffer.
	if _, err := s.roundTrip(cmdFreeData, nil); err != nil {
		s.logger.Warn("failed to free terminal data buffer", slog.Any("error", err))
	}

	return buf, nil
}

// Close ends the session. CMD_EXIT is best effort; the connection closes
// either way.
func (s *session) Close() error {
	frame := encodePacket(packet{
		command:   cmdExit,
		sessionID: s.sessionID,
		replyID:   s.nextReplyID(),
	})
	if _, err := s.conn.Write(frame); err != nil {
		s.logger.Debug("exit command failed", slog.Any("error", err))
	}

	return s.conn.Close()
}

func (s *session) nextReplyID() uint16 {
	s.replyID++

	return s.replyID
}

// roundTrip sends one command and reads the matching reply.
func (s *session) roundTrip(command uint16, data []byte) (packet, error) {
	replyID := s.nextReplyID()

	frame := encodePacket(packet{
		command:   command,
		sessionID: s.sessionID,
		replyID:   replyID,
		data:      data,
	})
	if _, err := s.conn.Write(frame); err != nil {
		return packet{}, errors.Wrap(err, "failed to write command")
	}

	resp, err := s.readPacket()
	if err != nil {
		return packet{}, err
	}
	if resp.replyID != replyID {
		return packet{}, errors.Errorf("reply id mismatch: sent %d, got %d", replyID, resp.replyID)
	}

	return resp, nil
}

// readPacket reads and decodes one frame off the wire.
func (s *session) readPacket() (packet, error) {
	header := make([]byte, frameHeaderLen)
	if _, err := io.ReadFull(s.conn, header); err != nil {
		return packet{}, errors.Wrap(err, "failed to read frame header")
	}

	if binary.LittleEndian.Uint32(header[0:4]) != tcpMagic {
		return packet{}, ErrBadFrame
	}

	size := binary.LittleEndian.Uint32(header[4:8])
	if size < packetHeaderLen || size > maxPayloadLen {
		return packet{}, ErrBadFrame
	}

	body := make([]byte, size)
	if _, err := io.ReadFull(s.conn, body); err != nil {
		return packet{}, errors.Wrap(err, "failed to read frame body")
	}

	return decodePacket(body)
}
