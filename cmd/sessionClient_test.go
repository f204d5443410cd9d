package cmd

import "errors"

// fakeSession is a scripted session shared by tests in this package.
type fakeSession struct {
	stdout []byte
	stderr []byte
	err    error
	closed int
}

func (s *fakeSession) Run(cmd string) ([]byte, []byte, error) {
	return s.stdout, s.stderr, s.err
}

func (s *fakeSession) Close() error {
	s.closed++
	return nil
}

// fakeClient hands out scripted sessions and counts Close calls.
type fakeClient struct {
	sess   *fakeSession
	newErr error
	closed int
}

func (c *fakeClient) NewSession() (session, error) {
	if c.newErr != nil {
		return nil, c.newErr
	}
	if c.sess == nil {
		return nil, errors.New("no session scripted")
	}
	return c.sess, nil
}

func (c *fakeClient) Close() error {
	c.closed++
	return nil
}
