package test

import (
	"fmt"

	"github.com/golang/mock/gomock"
	corev1 "k8s.io/api/core/v1"
)

type objectIdentityMatcher struct {
	kind      string
	namespace string
	name      string
}

func (m objectIdentityMatcher) Matches(arg interface{}) bool {
	ref, ok := arg.(corev1.ObjectReference)
	if !ok {
		return false
	}
	return ref.Kind == m.kind && ref.Namespace == m.namespace && ref.Name == m.name
}

func (m objectIdentityMatcher) String() string {
	return fmt.Sprintf("is reference to %s %s/%s", m.kind, m.namespace, m.name)
}

// EqualsObjectIdentity compares kind, namespace and name of an ObjectReference, ignoring uid and apiVersion
func EqualsObjectIdentity(kind, namespace, name string) gomock.Matcher {
	return objectIdentityMatcher{kind: kind, namespace: namespace, name: name}
}
