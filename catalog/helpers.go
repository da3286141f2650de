package catalog

import (
	"fmt"
	"strconv"
)

func itoa(n int) string {
	return strconv.Itoa(n)
}

func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}

func dynamoTooManyKeysError(n int) error {
	return fmt.Errorf("catalog.Get: %d keys exceeds DynamoDB's BatchGetItem limit of 100", n)
}
