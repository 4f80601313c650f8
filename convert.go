package nwsaver

import (
	"os"
	"path/filepath"
)

// Create encodes the screensaver described by configFile for the named
// device and writes it to output. Image paths in the configuration are
// relative to the directory containing it. The output file is only created
// once the whole screensaver has been encoded.
func (s *NWSaver) Create(device, configFile, output string) error {
	d, err := lookupDevice(device)
	if err != nil {
		return err
	}

	b, err := os.ReadFile(configFile)
	if err != nil {
		return err
	}

	out, err := d.create(s, b, filepath.Dir(configFile))
	if err != nil {
		return err
	}

	s.logger.Printf("Writing %d bytes to \"%s\"\n", len(out), output)

	return os.WriteFile(output, out, 0666)
}

// Disassemble decodes the screensaver in input and writes its bitmaps and
// configuration to the directory output, creating it if necessary. The
// device is detected from the file. Nothing is written if the file can't be
// decoded, however a failure while writing may leave some files behind.
func (s *NWSaver) Disassemble(input, output string) error {
	b, err := os.ReadFile(input)
	if err != nil {
		return err
	}

	d, err := sniff(b)
	if err != nil {
		return err
	}

	s.logger.Printf("Disassembling \"%s\" as %s\n", input, d.name)

	return d.disassemble(s, b, output)
}
