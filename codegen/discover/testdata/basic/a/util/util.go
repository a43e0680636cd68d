package util

type Key string
