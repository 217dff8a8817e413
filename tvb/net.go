package tvb

import "encoding/binary"

// IPv4Addr holds a 4-byte IPv4 address in network byte order, exactly as
// captured — GetIPv4 never host-converts.
type IPv4Addr [4]byte

// IPv6Addr holds a 16-byte IPv6 address.
type IPv6Addr [16]byte

// GUID is a Microsoft-style GUID: one 32-bit field, two 16-bit fields,
// and an 8-byte trailer.
type GUID struct {
	Data1 uint32
	Data2 uint16
	Data3 uint16
	Data4 [8]byte
}

// GetIPv4 reads four bytes and preserves network byte order; it does not
// host-convert them.
func (b *Buffer) GetIPv4(offset int64) (IPv4Addr, error) {
	data, err := fetch(b, "get_ipv4", offset, 4)
	if err != nil {
		return IPv4Addr{}, err
	}
	var addr IPv4Addr
	copy(addr[:], data)
	return addr, nil
}

// GetIPv6 copies sixteen bytes.
func (b *Buffer) GetIPv6(offset int64) (IPv6Addr, error) {
	data, err := fetch(b, "get_ipv6", offset, 16)
	if err != nil {
		return IPv6Addr{}, err
	}
	var addr IPv6Addr
	copy(addr[:], data)
	return addr, nil
}

// GetGUID reads a 16-byte GUID. littleEndian selects the byte order of
// Data1/Data2/Data3; Data4 is always read as a raw 8-byte trailer.
func (b *Buffer) GetGUID(offset int64, littleEndian bool) (GUID, error) {
	data, err := fetch(b, "get_guid", offset, 16)
	if err != nil {
		return GUID{}, err
	}
	var g GUID
	if littleEndian {
		g.Data1 = binary.LittleEndian.Uint32(data[0:4])
		g.Data2 = binary.LittleEndian.Uint16(data[4:6])
		g.Data3 = binary.LittleEndian.Uint16(data[6:8])
	} else {
		g.Data1 = binary.BigEndian.Uint32(data[0:4])
		g.Data2 = binary.BigEndian.Uint16(data[4:6])
		g.Data3 = binary.BigEndian.Uint16(data[6:8])
	}
	copy(g.Data4[:], data[8:16])
	return g, nil
}
