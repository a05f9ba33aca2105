package dx7

import (
	"bytes"
	"errors"
	"fmt"
	"time"

	"gitlab.com/gomidi/midi/v2"
	"gitlab.com/gomidi/midi/v2/drivers"
)

// bankDumpSize is the total length of a bulk dump message: header, body,
// checksum and end of sysex marker.
const bankDumpSize = len(bankHeader) + bankBodySize + 2

// ReceiveBank listens on the MIDI input port for a 32-voice bulk dump and
// decodes it. Sysex traffic that is not a bulk dump is ignored. Trigger
// the dump from the synth front panel; the DX7 does not answer dump
// requests for this format.
func ReceiveBank(in drivers.In, timeout time.Duration) ([]Preset, error) {
	msgCh := make(chan []byte, 1)
	stop, err := midi.ListenTo(in, func(msg midi.Message, _ int32) {
		if IsBank(msg) {
			select {
			case msgCh <- msg:
			default:
			}
		}
	}, midi.UseSysEx(), midi.SysExBufferSize(uint32(2*bankDumpSize)))
	if err != nil {
		return nil, fmt.Errorf("listening for bulk dump: %w", err)
	}
	defer stop()

	select {
	case msg := <-msgCh:
		return ReadBank(bytes.NewReader(msg))
	case <-time.After(timeout):
		return nil, errors.New("timed out waiting for bulk dump")
	}
}
