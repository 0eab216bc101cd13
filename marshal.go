package valwire

// Marshal converts a native Go value with From and encodes it. It shares
// the codec's error taxonomy: conversion failures surface as convert-phase
// errors, encoding failures as encode-phase errors.
func Marshal(x any) ([]byte, error) {
	v, err := From(x)
	if err != nil {
		return nil, err
	}
	return Encode(v)
}

// Unmarshal decodes one value from data and converts it to a native Go
// shape with Interface. Byte payloads in the result alias data.
func Unmarshal(data []byte) (any, error) {
	v, err := Decode(data)
	if err != nil {
		return nil, err
	}
	return v.Interface(), nil
}
