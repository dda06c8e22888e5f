package pods

import (
	"fmt"

	radixhttp "github.com/equinor/radix-common/net/http"
)

// PodNotFoundError Pod not found
func PodNotFoundError(namespace, podName string) error {
	return radixhttp.TypeMissingError(fmt.Sprintf("Pod %s not found in namespace %s", podName, namespace), nil)
}
