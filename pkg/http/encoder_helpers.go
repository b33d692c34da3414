package http

// appendCRLF appends \r\n to buf.
func appendCRLF(buf []byte) []byte {
	return append(buf, '\r', '\n')
}

// appendStatusLine appends "VERSION STATUS REASON\r\n" to buf.
func appendStatusLine(buf []byte, protocol ProtocolVersion, status Status) []byte {
	buf = append(buf, protocol.String()...)
	buf = append(buf, ' ')
	buf = append(buf, status.String()...)
	return appendCRLF(buf)
}

// appendHeader appends "Name: Value\r\n" to buf.
func appendHeader(buf []byte, name, value string) []byte {
	buf = append(buf, name...)
	buf = append(buf, ':', ' ')
	buf = append(buf, value...)
	return appendCRLF(buf)
}
