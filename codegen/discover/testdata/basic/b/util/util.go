package util

type Value struct{}
