package grid

// Ravel maps (ir,it,ip) to the flat index ir*nt*np + it*np + ip.
func Ravel(ir, it, ip, nt, np int) int {
	return ir*nt*np + it*np + ip
}

// Unravel is the inverse of Ravel.
func Unravel(idx, nt, np int) (ir, it, ip int) {
	ntp := nt * np
	ir = idx / ntp
	it = (idx - ir*ntp) / np
	ip = idx % np
	return ir, it, ip
}
