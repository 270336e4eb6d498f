package session

// GraphQL documents for the authentication and account operations.

const loginDoc = `mutation Login($email: String!, $password: String!) {
  login(email: $email, password: $password) {
    access_token
    token_type
    expires_in
    user {
      id name email email_verified_at avatar created_at updated_at
    }
  }
}`

const registerDoc = `mutation Register($name: String!, $email: String!, $password: String!, $password_confirmation: String!) {
  register(name: $name, email: $email, password: $password, password_confirmation: $password_confirmation) {
    access_token
    token_type
    expires_in
    user {
      id name email email_verified_at avatar created_at updated_at
    }
  }
}`

const logoutDoc = `mutation Logout {
  logout {
    status
    message
  }
}`

const meDoc = `query Me {
  me {
    id name email email_verified_at avatar profession_id
    profession { id name slug }
    created_at updated_at
  }
}`

const updateProfileDoc = `mutation UpdateProfile($name: String!, $email: String!, $profession_id: ID) {
  updateProfile(name: $name, email: $email, profession_id: $profession_id) {
    id name email email_verified_at profession_id
    profession { id name }
    created_at updated_at
  }
}`

const verifyEmailDoc = `mutation VerifyEmail($id: ID!, $hash: String!, $expires: Int!, $signature: String!) {
  verifyEmail(id: $id, hash: $hash, expires: $expires, signature: $signature) {
    status
    message
    verified
  }
}`

const resendVerificationDoc = `mutation ResendVerificationEmail {
  resendVerificationEmail {
    status
    message
  }
}`

const deleteAccountDoc = `mutation DeleteAccount {
  deleteAccount {
    status
    message
  }
}`

const professionsDoc = `query GetProfessions {
  professions {
    id name slug sort_order is_active
  }
}`
