package transport

import (
	"context"
	"errors"
	"io"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.bug.st/serial"
)

type fakePort struct {
	written []byte
	closed  bool
}

func (p *fakePort) Break(time.Duration) error                            { return nil }
func (p *fakePort) Drain() error                                         { return nil }
func (p *fakePort) GetModemStatusBits() (*serial.ModemStatusBits, error) { return nil, nil }
func (p *fakePort) ResetInputBuffer() error                              { return nil }
func (p *fakePort) ResetOutputBuffer() error                             { return nil }
func (p *fakePort) SetDTR(dtr bool) error                                { return nil }
func (p *fakePort) SetMode(mode *serial.Mode) error                      { return nil }
func (p *fakePort) SetReadTimeout(t time.Duration) error                 { return nil }
func (p *fakePort) SetRTS(rts bool) error                                { return nil }
func (p *fakePort) Read(b []byte) (int, error)                           { return 0, io.EOF }

func (p *fakePort) Write(b []byte) (int, error) {
	p.written = append(p.written, b...)
	return len(b), nil
}

func (p *fakePort) Close() error {
	p.closed = true
	return nil
}

func TestSerial_SendWritesAndCloses(t *testing.T) {
	fake := &fakePort{}
	var gotMode *serial.Mode
	s := NewSerial("/dev/ttyUSB0", 115200)
	s.open = func(name string, mode *serial.Mode) (serial.Port, error) {
		require.Equal(t, "/dev/ttyUSB0", name)
		gotMode = mode
		return fake, nil
	}

	require.NoError(t, s.Send(context.Background(), []byte("R U2")))
	require.Equal(t, "R U2", string(fake.written))
	require.True(t, fake.closed)
	require.Equal(t, 115200, gotMode.BaudRate)
	require.Equal(t, serial.OneStopBit, gotMode.StopBits)
}

func TestSerial_OpenFailure(t *testing.T) {
	s := NewSerial("/dev/missing", 9600)
	s.open = func(string, *serial.Mode) (serial.Port, error) {
		return nil, errors.New("no such port")
	}

	err := s.Send(context.Background(), []byte("U"))
	require.ErrorContains(t, err, "/dev/missing")
}

func TestTCP_SendDeliversPayload(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	received := make(chan []byte, 1)
	go func() {
		conn, err := ln.Accept()
		if err != nil {
			received <- nil
			return
		}
		defer conn.Close()
		data, _ := io.ReadAll(conn)
		received <- data
	}()

	tr := NewTCP(ln.Addr().String(), time.Second)
	require.NoError(t, tr.Send(context.Background(), []byte("F2 B'")))

	select {
	case data := <-received:
		require.Equal(t, "F2 B'", string(data))
	case <-time.After(2 * time.Second):
		t.Fatal("payload was not received")
	}
}

func TestTCP_DialFailure(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	addr := ln.Addr().String()
	require.NoError(t, ln.Close())

	require.Error(t, NewTCP(addr, 200*time.Millisecond).Send(context.Background(), []byte("U")))
}

func TestParseBDAddr(t *testing.T) {
	addr, err := parseBDAddr("00:1f:e1:dd:08:3d")
	require.NoError(t, err)
	require.Equal(t, [6]uint8{0x00, 0x1f, 0xe1, 0xdd, 0x08, 0x3d}, addr)

	for _, bad := range []string{"", "00:1f:e1:dd:08", "00:1f:e1:dd:08:zz", "000:1f:e1:dd:08:3"} {
		_, err := parseBDAddr(bad)
		require.Error(t, err, bad)
	}
}

func TestNew(t *testing.T) {
	tr, err := New(Options{Kind: "serial", SerialPort: "/dev/ttyUSB0", SerialBaud: 115200})
	require.NoError(t, err)
	require.IsType(t, &Serial{}, tr)

	tr, err = New(Options{Kind: "TCP", TCPAddr: "192.168.4.1:50001"})
	require.NoError(t, err)
	require.IsType(t, &TCP{}, tr)

	tr, err = New(Options{Kind: "bluetooth", BTAddr: "00:1f:e1:dd:08:3d", BTChannel: 3})
	require.NoError(t, err)
	require.IsType(t, &Bluetooth{}, tr)

	_, err = New(Options{Kind: "carrier-pigeon"})
	require.Error(t, err)

	_, err = New(Options{Kind: "tcp"})
	require.Error(t, err)
}
