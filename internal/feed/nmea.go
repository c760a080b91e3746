package feed

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// Fix is one position solution decoded from an NMEA sentence.
type Fix struct {
	Lat    float64
	Lon    float64
	Alt    float64
	HasAlt bool   // RMC carries no altitude
	Valid  bool   // GGA quality > 0, or RMC status "A"
	Time   string // HH:MM:SS from the sentence, empty if absent
}

// checksum computes the NMEA checksum: XOR of all bytes between "$" and "*".
func checksum(sentence string) string {
	var sum byte
	for i := 1; i < len(sentence); i++ {
		sum ^= sentence[i]
	}
	return fmt.Sprintf("%02X", sum)
}

// ParseSentence decodes a GGA or RMC sentence. Other sentence types return
// an error; callers are expected to skip them.
func ParseSentence(line string) (Fix, error) {
	line = strings.TrimSpace(line)
	if !strings.HasPrefix(line, "$") {
		return Fix{}, errors.New("sentence must start with $")
	}
	body, sum, ok := strings.Cut(line, "*")
	if !ok {
		return Fix{}, errors.New("missing checksum")
	}
	if want := checksum(body); !strings.EqualFold(sum, want) {
		return Fix{}, errors.Errorf("checksum mismatch: got %s want %s", sum, want)
	}

	fields := strings.Split(body[1:], ",")
	talker := fields[0]
	switch {
	case strings.HasSuffix(talker, "GGA"):
		return parseGGA(fields)
	case strings.HasSuffix(talker, "RMC"):
		return parseRMC(fields)
	}
	return Fix{}, errors.Errorf("unsupported sentence %s", talker)
}

// parseGGA decodes $xxGGA,time,lat,N/S,lon,E/W,quality,numSV,HDOP,alt,M,...
func parseGGA(fields []string) (Fix, error) {
	if len(fields) < 10 {
		return Fix{}, errors.New("short GGA sentence")
	}
	fix := Fix{Time: parseClock(fields[1])}
	quality, err := strconv.Atoi(fields[6])
	if err != nil {
		return Fix{}, errors.Wrap(err, "fix quality")
	}
	fix.Valid = quality > 0
	if !fix.Valid {
		return fix, nil
	}
	if fix.Lat, err = parseCoordinate(fields[2], fields[3]); err != nil {
		return Fix{}, err
	}
	if fix.Lon, err = parseCoordinate(fields[4], fields[5]); err != nil {
		return Fix{}, err
	}
	if fix.Alt, err = strconv.ParseFloat(fields[9], 64); err != nil {
		return Fix{}, errors.Wrap(err, "altitude")
	}
	fix.HasAlt = true
	return fix, nil
}

// parseRMC decodes $xxRMC,time,status,lat,N/S,lon,E/W,speed,course,date,...
func parseRMC(fields []string) (Fix, error) {
	if len(fields) < 7 {
		return Fix{}, errors.New("short RMC sentence")
	}
	fix := Fix{Time: parseClock(fields[1])}
	fix.Valid = fields[2] == "A"
	if !fix.Valid {
		return fix, nil
	}
	var err error
	if fix.Lat, err = parseCoordinate(fields[3], fields[4]); err != nil {
		return Fix{}, err
	}
	if fix.Lon, err = parseCoordinate(fields[5], fields[6]); err != nil {
		return Fix{}, err
	}
	return fix, nil
}

// parseCoordinate converts ddmm.mmmm (or dddmm.mmmm) plus hemisphere into
// signed decimal degrees.
func parseCoordinate(value, hemisphere string) (float64, error) {
	if value == "" {
		return 0, errors.New("empty coordinate")
	}
	raw, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, errors.Wrap(err, "coordinate")
	}
	deg := float64(int(raw / 100))
	min := raw - deg*100
	out := deg + min/60
	switch hemisphere {
	case "S", "W":
		out = -out
	case "N", "E":
	default:
		return 0, errors.Errorf("bad hemisphere %q", hemisphere)
	}
	return out, nil
}

// parseClock turns hhmmss[.sss] into HH:MM:SS display text.
func parseClock(value string) string {
	if len(value) < 6 {
		return ""
	}
	return value[0:2] + ":" + value[2:4] + ":" + value[4:6]
}
