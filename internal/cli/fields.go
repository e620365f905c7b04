package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/spf13/pflag"

	"github.com/goliatone/go-riskform/pkg/model"
)

const flagInput = "input"

// fieldFlags collects the eight metrics from flags and an optional JSON
// document. Flags win over the document.
type fieldFlags struct {
	values [model.FieldCount]string
	input  string
}

func (f *fieldFlags) register(flags *pflag.FlagSet) {
	for _, id := range model.FieldIDs() {
		flags.StringVar(&f.values[id], flagName(id), "", fmt.Sprintf("value for %s", id))
	}
	flags.StringVar(&f.input, flagInput, "", `JSON file with the metrics keyed by field name ("-" reads stdin)`)
}

func (f *fieldFlags) fieldSet(flags *pflag.FlagSet, stdin io.Reader) (model.FieldSet, error) {
	var set model.FieldSet
	if f.input != "" {
		loaded, err := readFieldSet(f.input, stdin)
		if err != nil {
			return model.FieldSet{}, err
		}
		set = loaded
	}
	for _, id := range model.FieldIDs() {
		if flags.Changed(flagName(id)) {
			set.Set(id, f.values[id])
		}
	}
	return set, nil
}

func readFieldSet(path string, stdin io.Reader) (model.FieldSet, error) {
	var (
		data []byte
		err  error
	)
	if path == "-" {
		data, err = io.ReadAll(stdin)
	} else {
		data, err = os.ReadFile(path)
	}
	if err != nil {
		return model.FieldSet{}, fmt.Errorf("read input: %w", err)
	}
	var set model.FieldSet
	if err := json.Unmarshal(data, &set); err != nil {
		return model.FieldSet{}, fmt.Errorf("parse input %s: %w", path, err)
	}
	return set, nil
}

// flagName turns a wire name into a kebab-case flag, BloodPressure becomes
// blood-pressure and BMI stays bmi.
func flagName(id model.FieldID) string {
	name := id.String()
	var b strings.Builder
	runes := []rune(name)
	for i, r := range runes {
		if unicode.IsUpper(r) && i > 0 {
			prevLower := unicode.IsLower(runes[i-1])
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if prevLower || (nextLower && unicode.IsUpper(runes[i-1])) {
				b.WriteByte('-')
			}
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}
