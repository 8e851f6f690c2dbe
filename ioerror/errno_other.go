//go:build !unix

package ioerror

func errnoKind(error) (Kind, bool) { return KindOther, false }
